package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/validator"
	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession satisfies SessionUsecase with canned behavior per test.
type fakeSession struct {
	state     usecase.SessionState
	loginFn   func(ctx context.Context, input usecase.LoginInput) (*usecase.SessionState, error)
	loggedOut bool
}

func (f *fakeSession) Initialize(context.Context) {}

func (f *fakeSession) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionState, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeSession) Register(context.Context, usecase.RegisterInput) (*usecase.SessionState, error) {
	return &f.state, nil
}

func (f *fakeSession) Logout(context.Context) {
	f.loggedOut = true
	f.state = usecase.SessionState{Status: usecase.SessionUnauthenticated}
}

func (f *fakeSession) ForgotPassword(context.Context, usecase.ForgotPasswordInput) error {
	return nil
}

func (f *fakeSession) ResetPassword(context.Context, usecase.ResetPasswordInput) error {
	return nil
}

func (f *fakeSession) Current(context.Context) usecase.SessionState {
	return f.state
}

func (f *fakeSession) HandleAuthRejection(context.Context) {
	f.state = usecase.SessionState{Status: usecase.SessionUnauthenticated}
}

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	t.Parallel()

	session := &fakeSession{
		loginFn: func(_ context.Context, input usecase.LoginInput) (*usecase.SessionState, error) {
			assert.Equal(t, "alice@example.com", input.Email)

			return &usecase.SessionState{
				Status: usecase.SessionAuthenticated,
				User:   &entity.User{ID: "user-1", Email: input.Email},
			}, nil
		},
	}
	h := NewAuthHandler(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"authenticated"`)
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	t.Parallel()

	session := &fakeSession{
		loginFn: func(context.Context, usecase.LoginInput) (*usecase.SessionState, error) {
			t.Fatal("login must not be called on invalid input")

			return nil, nil
		},
	}
	h := NewAuthHandler(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	t.Parallel()

	session := &fakeSession{
		loginFn: func(context.Context, usecase.LoginInput) (*usecase.SessionState, error) {
			return nil, errors.Wrap(domainerrors.ErrRemoteRejected.WithDetails("invalid credentials"), "login")
		},
	}
	h := NewAuthHandler(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrRemoteRejected.ErrorCode(), env.Error.Code)
	assert.Equal(t, "invalid credentials", env.Error.Details)
}

func TestAuthHandler_SessionSnapshot(t *testing.T) {
	t.Parallel()

	session := &fakeSession{state: usecase.SessionState{Status: usecase.SessionLoading}}
	h := NewAuthHandler(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho()
	e.GET("/auth/session", h.Session)

	rec := doJSON(e, http.MethodGet, "/auth/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"loading"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	session := &fakeSession{state: usecase.SessionState{Status: usecase.SessionAuthenticated}}
	h := NewAuthHandler(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho()
	e.POST("/auth/logout", h.Logout)

	rec := doJSON(e, http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, session.loggedOut)
}
