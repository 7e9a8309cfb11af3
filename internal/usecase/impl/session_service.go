// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It is the single
// owner of the credential store and the in-memory identity: all writes to
// either happen here, as one assignment at the end of an operation.
type sessionService struct {
	authRepo  repository.AuthRepository
	creds     service.CredentialStore
	inspector service.TokenInspector
	logger    *slog.Logger

	mu       sync.RWMutex
	status   usecase.SessionStatus
	user     *entity.User
	initOnce sync.Once
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthRepo  repository.AuthRepository
	Creds     service.CredentialStore
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService. The session starts
// in the loading state and stays there until Initialize resolves it.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authRepo:  params.AuthRepo,
		creds:     params.Creds,
		inspector: params.Inspector,
		logger:    params.Logger,
		status:    usecase.SessionLoading,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize resolves the loading state exactly once. A second call is a
// no-op, and every exit path (including a panic in the remote call) still
// leaves the loading state behind.
func (srv *sessionService) Initialize(ctx context.Context) {
	srv.initOnce.Do(func() {
		status := usecase.SessionUnauthenticated
		var user *entity.User

		defer func() {
			srv.mu.Lock()
			srv.status = status
			srv.user = user
			srv.mu.Unlock()
		}()

		cred, found, err := srv.creds.Load(ctx)
		if err != nil {
			srv.log(ctx).Warn("Failed to read stored credential, starting unauthenticated", slog.Any("error", err))

			return
		}
		if !found || cred.Empty() {
			srv.log(ctx).Debug("No stored credential, starting unauthenticated")

			return
		}

		identity, err := srv.authRepo.UserInfo(ctx)
		if err != nil {
			srv.log(ctx).Info("Stored credential failed validation, discarding it", slog.Any("error", err))
			if clearErr := srv.creds.Clear(ctx); clearErr != nil {
				srv.log(ctx).Error("Failed to discard invalid credential", slog.Any("error", clearErr))
			}

			return
		}

		status = usecase.SessionAuthenticated
		user = identity
		srv.log(ctx).Info("Session restored", slog.String("user_id", identity.ID))
	})
}

// Login exchanges credentials for a session. The credential and identity are
// written only after both the remote call and the store write succeed, so a
// failure leaves no partial state behind.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionState, error) {
	result, err := srv.authRepo.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login")
	}

	return srv.adopt(ctx, result)
}

// Register creates a remote account; on success the returned token pair is
// adopted exactly like a login.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionState, error) {
	result, err := srv.authRepo.Register(ctx, repository.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Age:      input.Age,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "register")
	}

	return srv.adopt(ctx, result)
}

func (srv *sessionService) adopt(ctx context.Context, result *repository.AuthResult) (*usecase.SessionState, error) {
	if err := srv.creds.Save(ctx, result.Tokens); err != nil {
		srv.log(ctx).Error("Failed to persist credential", slog.Any("error", err))

		return nil, errors.Wrap(err, "persist credential")
	}

	user := result.User
	srv.mu.Lock()
	srv.status = usecase.SessionAuthenticated
	srv.user = &user
	srv.mu.Unlock()

	srv.log(ctx).Info("Session established", slog.String("user_id", user.ID))

	state := srv.Current(ctx)

	return &state, nil
}

// Logout invalidates the server-side session best-effort. The local cleanup
// runs in a deferred step so no exit path, including a failed remote call,
// can leave a stale credential behind.
func (srv *sessionService) Logout(ctx context.Context) {
	defer func() {
		if err := srv.creds.Clear(ctx); err != nil {
			srv.log(ctx).Error("Failed to clear credential on logout", slog.Any("error", err))
		}

		srv.mu.Lock()
		srv.status = usecase.SessionUnauthenticated
		srv.user = nil
		srv.mu.Unlock()

		srv.log(ctx).Info("Session ended")
	}()

	if err := srv.authRepo.Logout(ctx); err != nil {
		srv.log(ctx).Warn("Remote logout failed, clearing session anyway", slog.Any("error", err))
	}
}

func (srv *sessionService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	if err := srv.authRepo.ForgotPassword(ctx, input.Email); err != nil {
		srv.log(ctx).Warn("Forgot-password request failed", slog.Any("error", err))

		return errors.Wrap(err, "forgot password")
	}

	return nil
}

func (srv *sessionService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if err := srv.authRepo.ResetPassword(ctx, input.Token, input.NewPassword); err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return errors.Wrap(err, "reset password")
	}

	return nil
}

// Current returns a snapshot of the session, with the access-token expiry
// decoded for display when available.
func (srv *sessionService) Current(ctx context.Context) usecase.SessionState {
	srv.mu.RLock()
	state := usecase.SessionState{Status: srv.status}
	if srv.user != nil {
		user := *srv.user
		state.User = &user
	}
	srv.mu.RUnlock()

	if !state.Authenticated() {
		return state
	}

	cred, found, err := srv.creds.Load(ctx)
	if err != nil || !found {
		return state
	}
	claims, err := srv.inspector.Inspect(cred.AccessToken)
	if err != nil {
		// Opaque tokens are fine, the expiry is display-only.
		srv.log(ctx).Debug("Access token claims not readable", slog.Any("error", err))

		return state
	}
	state.AccessTokenExpiry = claims.ExpiresAt

	return state
}

// HandleAuthRejection runs after the gateway has already cleared a rejected
// credential; only the in-memory identity is left to drop.
func (srv *sessionService) HandleAuthRejection(ctx context.Context) {
	srv.mu.Lock()
	wasAuthenticated := srv.status == usecase.SessionAuthenticated
	srv.status = usecase.SessionUnauthenticated
	srv.user = nil
	srv.mu.Unlock()

	if wasAuthenticated {
		srv.log(ctx).Info("Session invalidated after credential rejection")
	}
}
