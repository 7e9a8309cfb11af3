package middleware

import (
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware guards routes that need an established session.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware creates a new session guard middleware
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects requests while the startup check is still running
// and when no identity is held. Handlers behind it can assume an
// authenticated session, though the remote API may still revoke it mid-flight.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := m.session.Current(c.Request().Context())
		switch state.Status {
		case usecase.SessionLoading:
			return errors.WithStack(domainerrors.ErrSessionLoading)
		case usecase.SessionAuthenticated:
			return next(c)
		default:
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}
	}
}
