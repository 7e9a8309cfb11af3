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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) List(ctx context.Context) ([]entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "list accounts")
	}
	srv.log(ctx).Debug("Accounts listed", slog.Int("count", len(accounts)))

	return accounts, nil
}

func (srv *accountService) Create(ctx context.Context, input usecase.AccountInput) error {
	form, err := accountForm(input)
	if err != nil {
		return err
	}

	if err := srv.accountRepo.Create(ctx, form); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("name", input.Name), slog.Any("error", err))

		return errors.Wrap(err, "create account")
	}
	srv.log(ctx).Info("Account created", slog.String("name", input.Name))

	return nil
}

func (srv *accountService) Update(ctx context.Context, id string, input usecase.AccountInput) error {
	form, err := accountForm(input)
	if err != nil {
		return err
	}

	if err := srv.accountRepo.Update(ctx, id, form); err != nil {
		srv.log(ctx).Error("Failed to update account", slog.String("account_id", id), slog.Any("error", err))

		return errors.Wrap(err, "update account")
	}
	srv.log(ctx).Info("Account updated", slog.String("account_id", id))

	return nil
}

func (srv *accountService) Delete(ctx context.Context, id string) error {
	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.String("account_id", id), slog.Any("error", err))

		return errors.Wrap(err, "delete account")
	}
	srv.log(ctx).Info("Account deleted", slog.String("account_id", id))

	return nil
}

// accountForm checks the closed enumerations before anything goes on the
// wire; go-playground tags cannot express multi-word enum values.
func accountForm(input usecase.AccountInput) (repository.AccountForm, error) {
	if !input.AccountType.Valid() {
		return repository.AccountForm{}, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown account type %q", input.AccountType)
	}

	return repository.AccountForm{
		Name:          input.Name,
		AccountNumber: input.AccountNumber,
		Agency:        input.Agency,
		Balance:       input.Balance,
		IsActive:      input.IsActive,
		AccountType:   input.AccountType,
		BankID:        input.BankID,
	}, nil
}
