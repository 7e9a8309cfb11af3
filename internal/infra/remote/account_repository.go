package remote

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/gateway"

	"github.com/pkg/errors"
)

type accountRepository struct {
	gw *gateway.Gateway
}

// NewAccountRepository is the constructor for the remote AccountRepository.
func NewAccountRepository(gw *gateway.Gateway) repository.AccountRepository {
	return &accountRepository{gw: gw}
}

func (r *accountRepository) List(ctx context.Context) ([]entity.Account, error) {
	var out struct {
		Accounts []entity.Account `json:"accounts"`
	}
	if err := r.gw.Get(ctx, "/account/list", &out); err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}

	return out.Accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, form repository.AccountForm) error {
	return errors.Wrap(r.gw.Post(ctx, "/account/create", form, nil), "create account")
}

func (r *accountRepository) Update(ctx context.Context, id string, form repository.AccountForm) error {
	return errors.Wrap(r.gw.Put(ctx, "/account/update/"+id, form, nil), "update account")
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	return errors.Wrap(r.gw.Delete(ctx, "/account/delete/"+id, nil), "delete account")
}
