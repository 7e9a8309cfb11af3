package entity

import "time"

// TransactionType is the closed enumeration of movement kinds the remote API
// accepts.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	TransactionTypeTransfer   TransactionType = "Transfer"
	TransactionTypePayment    TransactionType = "Payment"
	TransactionTypeRefund     TransactionType = "Refund"
	TransactionTypeFee        TransactionType = "Fee"
	TransactionTypeInterest   TransactionType = "Interest"
	TransactionTypeAdjustment TransactionType = "Adjustment"
)

// TransactionTypes lists every valid transaction type, in display order.
func TransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeDeposit,
		TransactionTypeWithdrawal,
		TransactionTypeTransfer,
		TransactionTypePayment,
		TransactionTypeRefund,
		TransactionTypeFee,
		TransactionTypeInterest,
		TransactionTypeAdjustment,
	}
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	for _, known := range TransactionTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// TransactionCategory is the closed enumeration of spending categories.
type TransactionCategory string

const (
	CategoryGroceries      TransactionCategory = "Groceries"
	CategoryUtilities      TransactionCategory = "Utilities"
	CategoryRent           TransactionCategory = "Rent"
	CategoryEntertainment  TransactionCategory = "Entertainment"
	CategoryTransportation TransactionCategory = "Transportation"
	CategoryHealthcare     TransactionCategory = "Healthcare"
	CategoryEducation      TransactionCategory = "Education"
	CategoryOther          TransactionCategory = "Other"
)

// TransactionCategories lists every valid category, in display order.
func TransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryGroceries,
		CategoryUtilities,
		CategoryRent,
		CategoryEntertainment,
		CategoryTransportation,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c TransactionCategory) Valid() bool {
	for _, known := range TransactionCategories() {
		if c == known {
			return true
		}
	}

	return false
}

// Transaction is a single money movement as reported by the remote API.
// Amounts are plain numeric passthroughs, same as Account.Balance.
type Transaction struct {
	ID          string              `json:"id"`
	Amount      float64             `json:"amount"`
	Type        TransactionType     `json:"type"`
	Description string              `json:"description"`
	From        string              `json:"from"`
	To          string              `json:"to"`
	Category    TransactionCategory `json:"category"`
	CreatedAt   time.Time           `json:"createdAt"`
	Account     *Account            `json:"account,omitempty"`
}

// TransactionSummary is the aggregate view computed by the remote API for the
// dashboard cards.
type TransactionSummary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}
