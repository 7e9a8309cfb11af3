package impl

import (
	"context"
	"log/slog"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for the transaction service, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *transactionService) List(ctx context.Context, accountID string) ([]entity.Transaction, error) {
	transactions, err := srv.transactionRepo.List(ctx, accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to list transactions", slog.Any("error", err))

		return nil, errors.Wrap(err, "list transactions")
	}
	srv.log(ctx).Debug("Transactions listed", slog.Int("count", len(transactions)))

	return transactions, nil
}

func (srv *transactionService) Create(ctx context.Context, input usecase.TransactionInput) error {
	form, err := transactionForm(input)
	if err != nil {
		return err
	}

	if err := srv.transactionRepo.Create(ctx, form); err != nil {
		srv.log(ctx).Error("Failed to create transaction", slog.Any("error", err))

		return errors.Wrap(err, "create transaction")
	}
	srv.log(ctx).Info("Transaction created", slog.String("type", string(input.Type)))

	return nil
}

func (srv *transactionService) Update(ctx context.Context, id string, input usecase.TransactionInput) error {
	form, err := transactionForm(input)
	if err != nil {
		return err
	}

	if err := srv.transactionRepo.Update(ctx, id, form); err != nil {
		srv.log(ctx).Error("Failed to update transaction", slog.String("transaction_id", id), slog.Any("error", err))

		return errors.Wrap(err, "update transaction")
	}
	srv.log(ctx).Info("Transaction updated", slog.String("transaction_id", id))

	return nil
}

func (srv *transactionService) Delete(ctx context.Context, id string) error {
	if err := srv.transactionRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete transaction", slog.String("transaction_id", id), slog.Any("error", err))

		return errors.Wrap(err, "delete transaction")
	}
	srv.log(ctx).Info("Transaction deleted", slog.String("transaction_id", id))

	return nil
}

func (srv *transactionService) Summary(ctx context.Context) (*entity.TransactionSummary, error) {
	summary, err := srv.transactionRepo.Summary(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch transaction summary", slog.Any("error", err))

		return nil, errors.Wrap(err, "fetch summary")
	}

	return summary, nil
}

func transactionForm(input usecase.TransactionInput) (repository.TransactionForm, error) {
	if !input.Type.Valid() {
		return repository.TransactionForm{}, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown transaction type %q", input.Type)
	}
	if !input.Category.Valid() {
		return repository.TransactionForm{}, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown transaction category %q", input.Category)
	}

	return repository.TransactionForm{
		AccountID:   input.AccountID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: input.Description,
		From:        input.From,
		To:          input.To,
		Category:    input.Category,
	}, nil
}
