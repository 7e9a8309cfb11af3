package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// TransactionInput carries the transaction create/update form from the
// delivery layer.
type TransactionInput struct {
	AccountID   string                     `json:"accountId" validate:"required"`
	Amount      float64                    `json:"amount" validate:"required"`
	Type        entity.TransactionType     `json:"type" validate:"required"`
	Description string                     `json:"description" validate:"required"`
	From        string                     `json:"from"`
	To          string                     `json:"to"`
	Category    entity.TransactionCategory `json:"category" validate:"required"`
}

// TransactionUsecase defines the transaction view operations.
type TransactionUsecase interface {
	// List returns transactions, restricted to accountID when non-empty.
	List(ctx context.Context, accountID string) ([]entity.Transaction, error)
	Create(ctx context.Context, input TransactionInput) error
	Update(ctx context.Context, id string, input TransactionInput) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*entity.TransactionSummary, error)
}
