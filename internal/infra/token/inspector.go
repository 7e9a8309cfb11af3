// Package token reads display-level claims out of bearer tokens.
package token

import (
	"finboard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type inspector struct {
	parser *jwt.Parser
}

// NewInspector creates a TokenInspector that decodes JWT claims without
// signature verification. The dashboard never holds the signing key; validity
// is always decided by the remote API.
func NewInspector() service.TokenInspector {
	return &inspector{parser: jwt.NewParser()}
}

func (i *inspector) Inspect(tokenString string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	out := &service.TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt := exp.Time
		out.ExpiresAt = &expiresAt
	}

	return out, nil
}
