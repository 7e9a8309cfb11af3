// Package repository defines the interfaces for the remote API access layer.
// These interfaces act as a contract between the application layer and the
// infrastructure layer; every implementation talks to the remote finance API
// through the request gateway, never to a local store.
package repository

import (
	"context"

	"finboard/internal/domain/entity"
)

// AuthResult is what the remote API returns on a successful login or
// registration: the identity plus a fresh token pair.
type AuthResult struct {
	User   entity.User       `json:"user"`
	Tokens entity.Credential `json:"tokens"`
}

// RegisterInput carries the registration form. Age is omitted from the wire
// payload when nil.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age,omitempty"`
}

// AuthRepository defines the authentication operations of the remote API.
type AuthRepository interface {
	// Login exchanges email and password for an identity and token pair.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register creates a new remote account and returns the identity and
	// token pair, same contract as Login.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Logout invalidates the server-side session for the current credential.
	Logout(ctx context.Context) error

	// UserInfo fetches the identity belonging to the current credential.
	UserInfo(ctx context.Context) (*entity.User, error)

	// ForgotPassword requests a password-reset email for the address.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token together with the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
