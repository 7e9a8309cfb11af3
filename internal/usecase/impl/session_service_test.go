package impl

import (
	"context"
	"testing"
	"time"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(authRepo repository.AuthRepository, store service.CredentialStore, inspector service.TokenInspector) usecase.SessionUsecase {
	if inspector == nil {
		inspector = &fakeInspector{err: errors.New("opaque token")}
	}

	return NewSessionService(SessionServiceParams{
		AuthRepo:  authRepo,
		Creds:     store,
		Inspector: inspector,
		Logger:    discardLogger(),
	})
}

func TestSessionService_StartsLoading(t *testing.T) {
	t.Parallel()

	srv := newSessionService(newFakeAuthRepo(), &memCredStore{}, nil)

	state := srv.Current(context.Background())
	assert.Equal(t, usecase.SessionLoading, state.Status)
	assert.Nil(t, state.User)
}

func TestSessionService_InitializeWithoutCredential(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	srv := newSessionService(authRepo, &memCredStore{}, nil)

	srv.Initialize(context.Background())

	state := srv.Current(context.Background())
	assert.Equal(t, usecase.SessionUnauthenticated, state.Status)
	// An empty store must not cost a network round trip.
	assert.Zero(t, authRepo.totalCalls())
}

func TestSessionService_InitializeRestoresSession(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.userInfoFn = func(context.Context) (*entity.User, error) {
		return &entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}, nil
	}
	store := &memCredStore{cred: entity.Credential{AccessToken: "stored"}, found: true}
	srv := newSessionService(authRepo, store, nil)

	srv.Initialize(context.Background())

	state := srv.Current(context.Background())
	assert.Equal(t, usecase.SessionAuthenticated, state.Status)
	require.NotNil(t, state.User)
	assert.Equal(t, "user-1", state.User.ID)
	assert.Equal(t, 1, authRepo.calls["userInfo"])
}

func TestSessionService_InitializeDiscardsRejectedCredential(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.userInfoFn = func(context.Context) (*entity.User, error) {
		return nil, errors.New("token expired")
	}
	store := &memCredStore{cred: entity.Credential{AccessToken: "stale"}, found: true}
	srv := newSessionService(authRepo, store, nil)

	srv.Initialize(context.Background())

	state := srv.Current(context.Background())
	assert.Equal(t, usecase.SessionUnauthenticated, state.Status)
	_, found := store.stored()
	assert.False(t, found, "invalid credential must be discarded")
}

func TestSessionService_InitializeStoreReadFailure(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	store := &memCredStore{loadErr: errors.New("disk gone")}
	srv := newSessionService(authRepo, store, nil)

	srv.Initialize(context.Background())

	assert.Equal(t, usecase.SessionUnauthenticated, srv.Current(context.Background()).Status)
	assert.Zero(t, authRepo.totalCalls())
}

func TestSessionService_InitializeRunsOnce(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.userInfoFn = func(context.Context) (*entity.User, error) {
		return &entity.User{ID: "user-1"}, nil
	}
	store := &memCredStore{cred: entity.Credential{AccessToken: "stored"}, found: true}
	srv := newSessionService(authRepo, store, nil)

	srv.Initialize(context.Background())
	srv.Initialize(context.Background())

	assert.Equal(t, 1, authRepo.calls["userInfo"])
}

func TestSessionService_Login(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.loginFn = func(_ context.Context, email, password string) (*repository.AuthResult, error) {
		assert.Equal(t, "alice@example.com", email)
		assert.Equal(t, "s3cret", password)

		return &repository.AuthResult{
			User:   entity.User{ID: "user-1", Email: email},
			Tokens: entity.Credential{AccessToken: "access", RefreshToken: "refresh"},
		}, nil
	}
	store := &memCredStore{}
	srv := newSessionService(authRepo, store, nil)

	state, err := srv.Login(context.Background(), usecase.LoginInput{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionAuthenticated, state.Status)
	require.NotNil(t, state.User)
	assert.Equal(t, "user-1", state.User.ID)

	cred, found := store.stored()
	require.True(t, found)
	assert.Equal(t, "access", cred.AccessToken)
	assert.Equal(t, "refresh", cred.RefreshToken)
}

func TestSessionService_LoginFailureLeavesNoState(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.loginFn = func(context.Context, string, string) (*repository.AuthResult, error) {
		return nil, errors.New("bad password")
	}
	store := &memCredStore{}
	srv := newSessionService(authRepo, store, nil)
	srv.Initialize(context.Background())

	_, err := srv.Login(context.Background(), usecase.LoginInput{Email: "alice@example.com", Password: "nope"})
	require.Error(t, err)

	assert.Equal(t, usecase.SessionUnauthenticated, srv.Current(context.Background()).Status)
	_, found := store.stored()
	assert.False(t, found)
}

func TestSessionService_LoginSaveFailureLeavesNoState(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.loginFn = func(context.Context, string, string) (*repository.AuthResult, error) {
		return &repository.AuthResult{
			User:   entity.User{ID: "user-1"},
			Tokens: entity.Credential{AccessToken: "access"},
		}, nil
	}
	store := &memCredStore{saveErr: errors.New("readonly filesystem")}
	srv := newSessionService(authRepo, store, nil)
	srv.Initialize(context.Background())

	_, err := srv.Login(context.Background(), usecase.LoginInput{Email: "alice@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.Equal(t, usecase.SessionUnauthenticated, srv.Current(context.Background()).Status)
}

func TestSessionService_RegisterAdoptsSession(t *testing.T) {
	t.Parallel()

	age := 30
	authRepo := newFakeAuthRepo()
	authRepo.registerFn = func(_ context.Context, input repository.RegisterInput) (*repository.AuthResult, error) {
		assert.Equal(t, "Bob", input.Name)
		require.NotNil(t, input.Age)
		assert.Equal(t, 30, *input.Age)

		return &repository.AuthResult{
			User:   entity.User{ID: "user-2", Name: input.Name},
			Tokens: entity.Credential{AccessToken: "access"},
		}, nil
	}
	store := &memCredStore{}
	srv := newSessionService(authRepo, store, nil)

	state, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "s3cret",
		Age:      &age,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionAuthenticated, state.Status)

	_, found := store.stored()
	assert.True(t, found)
}

func TestSessionService_LogoutAlwaysCleansUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		logoutErr error
	}{
		{name: "remote logout succeeds"},
		{name: "remote logout fails", logoutErr: errors.New("api down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authRepo := newFakeAuthRepo()
			authRepo.loginFn = func(context.Context, string, string) (*repository.AuthResult, error) {
				return &repository.AuthResult{
					User:   entity.User{ID: "user-1"},
					Tokens: entity.Credential{AccessToken: "access"},
				}, nil
			}
			authRepo.logoutFn = func(context.Context) error { return tt.logoutErr }
			store := &memCredStore{}
			srv := newSessionService(authRepo, store, nil)

			_, err := srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.com", Password: "x"})
			require.NoError(t, err)

			srv.Logout(context.Background())

			state := srv.Current(context.Background())
			assert.Equal(t, usecase.SessionUnauthenticated, state.Status)
			assert.Nil(t, state.User)
			_, found := store.stored()
			assert.False(t, found, "credential must be gone after logout")
		})
	}
}

func TestSessionService_CurrentExposesTokenExpiry(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	authRepo := newFakeAuthRepo()
	authRepo.userInfoFn = func(context.Context) (*entity.User, error) {
		return &entity.User{ID: "user-1"}, nil
	}
	store := &memCredStore{cred: entity.Credential{AccessToken: "jwt"}, found: true}
	inspector := &fakeInspector{claims: &service.TokenClaims{Subject: "user-1", ExpiresAt: &expiry}}
	srv := newSessionService(authRepo, store, inspector)

	srv.Initialize(context.Background())

	state := srv.Current(context.Background())
	require.NotNil(t, state.AccessTokenExpiry)
	assert.True(t, expiry.Equal(*state.AccessTokenExpiry))
}

func TestSessionService_HandleAuthRejection(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.userInfoFn = func(context.Context) (*entity.User, error) {
		return &entity.User{ID: "user-1"}, nil
	}
	store := &memCredStore{cred: entity.Credential{AccessToken: "stored"}, found: true}
	srv := newSessionService(authRepo, store, nil)
	srv.Initialize(context.Background())
	require.Equal(t, usecase.SessionAuthenticated, srv.Current(context.Background()).Status)

	srv.HandleAuthRejection(context.Background())

	state := srv.Current(context.Background())
	assert.Equal(t, usecase.SessionUnauthenticated, state.Status)
	assert.Nil(t, state.User)
}

func TestSessionService_PasswordResetFlow(t *testing.T) {
	t.Parallel()

	authRepo := newFakeAuthRepo()
	authRepo.forgotFn = func(_ context.Context, email string) error {
		assert.Equal(t, "alice@example.com", email)

		return nil
	}
	authRepo.resetFn = func(_ context.Context, token, newPassword string) error {
		assert.Equal(t, "reset-token", token)
		assert.Equal(t, "n3wpass", newPassword)

		return nil
	}
	srv := newSessionService(authRepo, &memCredStore{}, nil)
	srv.Initialize(context.Background())

	require.NoError(t, srv.ForgotPassword(context.Background(), usecase.ForgotPasswordInput{Email: "alice@example.com"}))
	require.NoError(t, srv.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "n3wpass"}))

	// Neither half of the reset flow touches the session.
	assert.Equal(t, usecase.SessionUnauthenticated, srv.Current(context.Background()).Status)
}
