package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// BankUsecase exposes the bank catalogue for account-creation forms.
type BankUsecase interface {
	All(ctx context.Context) ([]entity.Bank, error)
}
