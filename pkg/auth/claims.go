package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims of a credit-platform identity proof.
// A token proves the caller controls exactly one on-platform identity;
// the identity address is carried in both Subject and Identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity string `json:"identity"`
}

// ProvesControlOf checks whether the claims prove control of the given
// identity address.
func (c Claims) ProvesControlOf(identity string) bool {
	return c.Identity != "" && c.Identity == identity
}
