// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is the bearer token pair that authorizes calls against the
// remote API. Both tokens are opaque to the dashboard: the access token is
// attached verbatim to outgoing requests, the refresh token is stored only so
// it survives alongside the access token and can be presented on logout.
type Credential struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Empty reports whether the credential carries no usable access token.
// An empty credential means the session is unauthenticated.
func (c Credential) Empty() bool {
	return c.AccessToken == ""
}
