package remote

import (
	"context"
	"net/url"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/gateway"

	"github.com/pkg/errors"
)

type transactionRepository struct {
	gw *gateway.Gateway
}

// NewTransactionRepository is the constructor for the remote TransactionRepository.
func NewTransactionRepository(gw *gateway.Gateway) repository.TransactionRepository {
	return &transactionRepository{gw: gw}
}

func (r *transactionRepository) List(ctx context.Context, accountID string) ([]entity.Transaction, error) {
	path := "/transaction/list"
	if accountID != "" {
		path += "?accountId=" + url.QueryEscape(accountID)
	}

	var out struct {
		Transactions []entity.Transaction `json:"transactions"`
	}
	if err := r.gw.Get(ctx, path, &out); err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}

	return out.Transactions, nil
}

func (r *transactionRepository) Create(ctx context.Context, form repository.TransactionForm) error {
	return errors.Wrap(r.gw.Post(ctx, "/transaction/create", form, nil), "create transaction")
}

func (r *transactionRepository) Update(ctx context.Context, id string, form repository.TransactionForm) error {
	return errors.Wrap(r.gw.Put(ctx, "/transaction/"+id+"/update", form, nil), "update transaction")
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	return errors.Wrap(r.gw.Delete(ctx, "/transaction/"+id+"/delete", nil), "delete transaction")
}

func (r *transactionRepository) Summary(ctx context.Context) (*entity.TransactionSummary, error) {
	var out struct {
		Summary entity.TransactionSummary `json:"summary"`
	}
	if err := r.gw.Get(ctx, "/transaction/summary", &out); err != nil {
		return nil, errors.Wrap(err, "fetch transaction summary")
	}

	return &out.Summary, nil
}
