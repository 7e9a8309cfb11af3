package entity

// AccountType is the closed enumeration of account categories the remote API
// accepts. Values are sent verbatim on the wire.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking Account"
	AccountTypeSavings    AccountType = "Savings Account"
	AccountTypeBusiness   AccountType = "Business Account"
	AccountTypeJoin       AccountType = "Join Account"
	AccountTypeStudent    AccountType = "Student Account"
	AccountTypeInvestment AccountType = "Investment Account"
)

// AccountTypes lists every valid account type, in display order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeBusiness,
		AccountTypeJoin,
		AccountTypeStudent,
		AccountTypeInvestment,
	}
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// Account is a bank account as reported by the remote API. The balance is a
// plain numeric passthrough: the remote API owns all financial correctness,
// so no decimal arithmetic happens on this side.
type Account struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	AccountNumber string      `json:"accountNumber"`
	Agency        string      `json:"agency"`
	Balance       float64     `json:"balance"`
	IsActive      bool        `json:"isActive"`
	AccountType   AccountType `json:"accountType"`
	Bank          *Bank       `json:"bank,omitempty"`
	User          *User       `json:"user,omitempty"`
}
