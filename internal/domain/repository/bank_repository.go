package repository

import (
	"context"

	"finboard/internal/domain/entity"
)

// BankRepository defines the bank catalogue operations of the remote API.
type BankRepository interface {
	// All retrieves the full bank list used by account-creation forms.
	All(ctx context.Context) ([]entity.Bank, error)
}
