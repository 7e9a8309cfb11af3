package remote

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/gateway"

	"github.com/pkg/errors"
)

type bankRepository struct {
	gw *gateway.Gateway
}

// NewBankRepository is the constructor for the remote BankRepository.
func NewBankRepository(gw *gateway.Gateway) repository.BankRepository {
	return &bankRepository{gw: gw}
}

func (r *bankRepository) All(ctx context.Context) ([]entity.Bank, error) {
	var out struct {
		Banks []entity.Bank `json:"banks"`
	}
	if err := r.gw.Get(ctx, "/bank/all", &out); err != nil {
		return nil, errors.Wrap(err, "list banks")
	}

	return out.Banks, nil
}
