package entity

// Bank is reference data used by account-creation forms. Read-only to the
// dashboard; the remote API owns the catalogue.
type Bank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
