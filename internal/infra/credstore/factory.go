package credstore

import (
	"context"
	"io"

	"finboard/config"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the credential store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New builds the credential store selected by session.store.
func New(params Params) (service.CredentialStore, error) {
	cfg := params.Config

	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		store := NewMemoryStore(cfg.Session.KeyPrefix)
		appendCloseHook(params.Lifecycle, store)

		return store, nil

	case config.SessionStoreFile:
		store, err := NewFileStore(cfg.Session.FileDir, cfg.Session.KeyPrefix)
		if err != nil {
			return nil, err
		}
		appendCloseHook(params.Lifecycle, store)

		return store, nil

	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "ping session redis")
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisStore(client, cfg.Session.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}
}

func appendCloseHook(lc fx.Lifecycle, store service.CredentialStore) {
	closer, ok := store.(io.Closer)
	if !ok {
		return
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(closer.Close())
		},
	})
}
