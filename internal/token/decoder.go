// Package token extracts the advisory identity from a bearer token.
//
// Decoding is local and non-verifying: the payload segment is read without
// checking the signature, so the result is only as trustworthy as the token
// itself. It drives which UI a user sees; the server alone decides which
// operations succeed.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// Decode reads the claims out of a three-segment JWT without verifying its
// signature. Malformed input yields domain.ErrTokenMalformed; it never
// panics past this boundary.
func Decode(raw string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}

	identity := domain.Identity{
		Email:     claimString(claims, "email"),
		FirstName: claimString(claims, "first_name"),
		LastName:  claimString(claims, "last_name"),
		Role:      roleFromClaims(claims),
	}
	// The backend issues the email as the subject claim.
	if identity.Email == "" {
		identity.Email = claimString(claims, "sub")
	}
	return identity, nil
}

// roleFromClaims applies the role derivation policy: admin when the numeric
// role claim is 1 or an explicit is_admin flag is set, client otherwise.
func roleFromClaims(claims jwt.MapClaims) domain.Role {
	if role, ok := claims["role"].(float64); ok && int(role) == int(domain.RoleAdmin) {
		return domain.RoleAdmin
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok && isAdmin {
		return domain.RoleAdmin
	}
	return domain.RoleClient
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
