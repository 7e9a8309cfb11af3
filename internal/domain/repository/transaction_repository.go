package repository

import (
	"context"

	"finboard/internal/domain/entity"
)

// TransactionForm carries the transaction create/update form.
type TransactionForm struct {
	AccountID   string                     `json:"accountId"`
	Amount      float64                    `json:"amount"`
	Type        entity.TransactionType     `json:"type"`
	Description string                     `json:"description"`
	From        string                     `json:"from"`
	To          string                     `json:"to"`
	Category    entity.TransactionCategory `json:"category"`
}

// TransactionRepository defines the transaction operations of the remote API.
type TransactionRepository interface {
	// List retrieves transactions, optionally restricted to one account when
	// accountID is non-empty.
	List(ctx context.Context, accountID string) ([]entity.Transaction, error)

	// Create registers a new transaction.
	Create(ctx context.Context, form TransactionForm) error

	// Update replaces the transaction identified by id with the form contents.
	Update(ctx context.Context, id string, form TransactionForm) error

	// Delete removes the transaction identified by id.
	Delete(ctx context.Context, id string) error

	// Summary retrieves the aggregate income/expense/balance/count view.
	Summary(ctx context.Context) (*entity.TransactionSummary, error)
}
