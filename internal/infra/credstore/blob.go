// Package credstore provides the credential persistence backends. All of them
// implement service.CredentialStore: a scoped key-value store holding the
// session token pair under two fixed keys.
package credstore

import (
	"context"
	"os"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// blobStore keeps the token pair in a gocloud blob bucket. With a fileblob
// bucket the credential survives a restart; with a memblob bucket it lives
// only for the current process, which is the deliberate "per-run session"
// variant.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewFileStore opens a credential store backed by a directory on disk.
func NewFileStore(dir, prefix string) (service.CredentialStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create session store dir %s", dir)
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open file session store at %s", dir)
	}

	return &blobStore{bucket: bucket, prefix: prefix}, nil
}

// NewMemoryStore opens a credential store that forgets everything when the
// process exits.
func NewMemoryStore(prefix string) service.CredentialStore {
	return &blobStore{bucket: memblob.OpenBucket(nil), prefix: prefix}
}

func (s *blobStore) key(name string) string {
	return s.prefix + "." + name
}

func (s *blobStore) Load(ctx context.Context) (entity.Credential, bool, error) {
	access, found, err := s.read(ctx, accessTokenKey)
	if err != nil {
		return entity.Credential{}, false, err
	}
	if !found {
		return entity.Credential{}, false, nil
	}

	// A missing refresh token is tolerated: the access token alone still
	// authorizes requests.
	refresh, _, err := s.read(ctx, refreshTokenKey)
	if err != nil {
		return entity.Credential{}, false, err
	}

	return entity.Credential{AccessToken: access, RefreshToken: refresh}, true, nil
}

func (s *blobStore) Save(ctx context.Context, cred entity.Credential) error {
	if err := s.bucket.WriteAll(ctx, s.key(accessTokenKey), []byte(cred.AccessToken), nil); err != nil {
		return errors.Wrap(err, "write access token")
	}
	if err := s.bucket.WriteAll(ctx, s.key(refreshTokenKey), []byte(cred.RefreshToken), nil); err != nil {
		return errors.Wrap(err, "write refresh token")
	}

	return nil
}

func (s *blobStore) Clear(ctx context.Context) error {
	for _, name := range []string{accessTokenKey, refreshTokenKey} {
		if err := s.bucket.Delete(ctx, s.key(name)); err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				continue
			}

			return errors.Wrapf(err, "delete %s", name)
		}
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStore) read(ctx context.Context, name string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.key(name))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "read %s", name)
	}

	return string(data), true, nil
}
