// Package service defines the interfaces for infrastructure services the
// application depends on, keeping the domain decoupled from concrete backends.
package service

import (
	"context"

	"finboard/internal/domain/entity"
)

// CredentialStore is the scoped key-value store holding the session's token
// pair under fixed keys.
//
// Ownership: the session service is the only writer via Save; the request
// gateway reads via Load and may Clear on an authentication rejection from
// the remote API. Nothing else touches the store.
type CredentialStore interface {
	// Load returns the stored credential. A store with no credential returns
	// (zero Credential, false, nil); absence is not an error.
	Load(ctx context.Context) (entity.Credential, bool, error)

	// Save stores the credential, replacing any previous one.
	Save(ctx context.Context, cred entity.Credential) error

	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
