package repository

import (
	"context"

	"finboard/internal/domain/entity"
)

// AccountForm carries the account create/update form. The balance travels as
// a JSON number, never as a string.
type AccountForm struct {
	Name          string             `json:"name"`
	AccountNumber string             `json:"accountNumber"`
	Agency        string             `json:"agency"`
	Balance       float64            `json:"balance"`
	IsActive      bool               `json:"isActive"`
	AccountType   entity.AccountType `json:"accountType"`
	BankID        string             `json:"bankId"`
}

// AccountRepository defines the account operations of the remote API.
type AccountRepository interface {
	// List retrieves all accounts of the authenticated user.
	List(ctx context.Context) ([]entity.Account, error)

	// Create registers a new account.
	Create(ctx context.Context, form AccountForm) error

	// Update replaces the account identified by id with the form contents.
	Update(ctx context.Context, id string, form AccountForm) error

	// Delete removes the account identified by id.
	Delete(ctx context.Context, id string) error
}
