package service

import "time"

// TokenClaims is the subset of access-token claims the dashboard surfaces.
// The token is never validated locally; the remote API is the authority, and
// an expired token is simply rejected by it on the next call.
type TokenClaims struct {
	Subject   string     // User identifier the token was issued for.
	ExpiresAt *time.Time // nil when the token carries no expiry claim.
}

// TokenInspector extracts display-level claims from a bearer token without
// verifying its signature.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
