package impl

import (
	"context"
	"log/slog"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bankService implements the BankUsecase interface.
type bankService struct {
	bankRepo repository.BankRepository
	logger   *slog.Logger
}

// BankServiceParams holds dependencies for the bank service, injected by Fx.
type BankServiceParams struct {
	fx.In

	BankRepo repository.BankRepository
	Logger   *slog.Logger
}

// NewBankService is the constructor for bankService.
func NewBankService(params BankServiceParams) usecase.BankUsecase {
	return &bankService{
		bankRepo: params.BankRepo,
		logger:   params.Logger,
	}
}

func (srv *bankService) All(ctx context.Context) ([]entity.Bank, error) {
	banks, err := srv.bankRepo.All(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
			Error("Failed to list banks", slog.Any("error", err))

		return nil, errors.Wrap(err, "list banks")
	}

	return banks, nil
}
