// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"finboard/internal/domain/entity"
)

// SessionStatus is the lifecycle state of the single dashboard session.
type SessionStatus string

const (
	// SessionLoading holds from process start until the one startup check
	// resolves. It is never re-entered afterwards.
	SessionLoading SessionStatus = "loading"

	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// SessionState is a snapshot of the session for display. User is non-nil iff
// Status is SessionAuthenticated.
type SessionState struct {
	Status            SessionStatus `json:"status"`
	User              *entity.User  `json:"user,omitempty"`
	AccessTokenExpiry *time.Time    `json:"accessTokenExpiry,omitempty"`
}

// Authenticated reports whether an identity is currently held.
func (s SessionState) Authenticated() bool {
	return s.Status == SessionAuthenticated
}

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to register. Age is optional and
// stays off the wire when absent.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
}

// ForgotPasswordInput requests a reset email.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput consumes a reset token with the new password.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// SessionUsecase owns the credential and the session identity. It is the only
// writer of either; the gateway reads the credential and may trigger
// HandleAuthRejection.
type SessionUsecase interface {
	// Initialize runs the one startup check. It never returns an error to
	// the caller: every failure path lands in the unauthenticated state with
	// the stored credential discarded.
	Initialize(ctx context.Context)

	// Login exchanges credentials for a session. On failure neither the
	// credential nor the session is touched.
	Login(ctx context.Context, input LoginInput) (*SessionState, error)

	// Register creates a remote account, then behaves exactly like Login.
	Register(ctx context.Context, input RegisterInput) (*SessionState, error)

	// Logout tells the remote API best-effort, then unconditionally discards
	// the credential and identity. It never returns an error.
	Logout(ctx context.Context)

	// ForgotPassword and ResetPassword proxy the reset flow; neither touches
	// the session.
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Current returns a snapshot of the session.
	Current(ctx context.Context) SessionState

	// HandleAuthRejection drops the in-memory identity after the gateway has
	// cleared a rejected credential. Wired once at startup.
	HandleAuthRejection(ctx context.Context)
}
