package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// AccountInput carries the account create/update form from the delivery layer.
type AccountInput struct {
	Name          string             `json:"name" validate:"required"`
	AccountNumber string             `json:"accountNumber" validate:"required"`
	Agency        string             `json:"agency" validate:"required"`
	Balance       float64            `json:"balance"`
	IsActive      bool               `json:"isActive"`
	AccountType   entity.AccountType `json:"accountType" validate:"required"`
	BankID        string             `json:"bankId" validate:"required"`
}

// AccountUsecase defines the account view operations: list on load, mutate,
// then let the caller reload the list.
type AccountUsecase interface {
	List(ctx context.Context) ([]entity.Account, error)
	Create(ctx context.Context, input AccountInput) error
	Update(ctx context.Context, id string, input AccountInput) error
	Delete(ctx context.Context, id string) error
}
