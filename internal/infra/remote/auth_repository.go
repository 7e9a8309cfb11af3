// Package remote implements the repository interfaces against the remote
// finance API. Every method is a single gateway call; there is no local
// caching and no retry, so callers always observe the remote state of the
// world as of their last read.
package remote

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/gateway"

	"github.com/pkg/errors"
)

type authRepository struct {
	gw *gateway.Gateway
}

// NewAuthRepository is the constructor for the remote AuthRepository.
func NewAuthRepository(gw *gateway.Gateway) repository.AuthRepository {
	return &authRepository{gw: gw}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*repository.AuthResult, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out repository.AuthResult
	if err := r.gw.Post(ctx, "/auth/login", payload, &out); err != nil {
		return nil, errors.Wrap(err, "login")
	}

	return &out, nil
}

func (r *authRepository) Register(ctx context.Context, input repository.RegisterInput) (*repository.AuthResult, error) {
	var out repository.AuthResult
	if err := r.gw.Post(ctx, "/auth/register", input, &out); err != nil {
		return nil, errors.Wrap(err, "register")
	}

	return &out, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	return errors.Wrap(r.gw.Post(ctx, "/auth/logout", nil, nil), "logout")
}

func (r *authRepository) UserInfo(ctx context.Context) (*entity.User, error) {
	var out struct {
		User entity.User `json:"user"`
	}
	if err := r.gw.Get(ctx, "/user/info", &out); err != nil {
		return nil, errors.Wrap(err, "fetch user info")
	}

	return &out.User, nil
}

func (r *authRepository) ForgotPassword(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}

	return errors.Wrap(r.gw.Post(ctx, "/auth/forgot-password", payload, nil), "forgot password")
}

func (r *authRepository) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}{Token: token, NewPassword: newPassword}

	return errors.Wrap(r.gw.Post(ctx, "/auth/reset-password", payload, nil), "reset password")
}
