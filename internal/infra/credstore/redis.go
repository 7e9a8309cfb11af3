package credstore

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps the token pair in redis, for a dashboard instance deployed
// as a long-lived service whose session must survive process replacement.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing redis client as a credential store.
func NewRedisStore(client *redis.Client, prefix string) service.CredentialStore {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *redisStore) Load(ctx context.Context) (entity.Credential, bool, error) {
	values, err := s.client.MGet(ctx, s.key(accessTokenKey), s.key(refreshTokenKey)).Result()
	if err != nil {
		return entity.Credential{}, false, errors.Wrap(err, "mget credential")
	}

	access, ok := values[0].(string)
	if !ok || access == "" {
		return entity.Credential{}, false, nil
	}
	refresh, _ := values[1].(string)

	return entity.Credential{AccessToken: access, RefreshToken: refresh}, true, nil
}

func (s *redisStore) Save(ctx context.Context, cred entity.Credential) error {
	err := s.client.MSet(ctx,
		s.key(accessTokenKey), cred.AccessToken,
		s.key(refreshTokenKey), cred.RefreshToken,
	).Err()

	return errors.Wrap(err, "mset credential")
}

func (s *redisStore) Clear(ctx context.Context) error {
	err := s.client.Del(ctx, s.key(accessTokenKey), s.key(refreshTokenKey)).Err()

	return errors.Wrap(err, "del credential")
}
