package auth

import (
	"github.com/dmitrymomot/partstock/modules/users"
)

// UserClaims is the public projection of a user embedded in session tokens.
// The rights snapshot lets guards authorize requests without a storage
// lookup; a rights change revokes the sessions carrying the stale snapshot.
type UserClaims struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Rights users.Rights `json:"rights"`
}

// Claims is the payload of a session token.
type Claims struct {
	User    UserClaims `json:"user"`
	TokenID string     `json:"tokenId"`
}

// NewClaims builds token claims from a user document and a fresh token ID.
func NewClaims(u *users.User, tokenID string) Claims {
	return Claims{
		User: UserClaims{
			ID:     u.ID.Hex(),
			Name:   u.Name,
			Email:  u.Email,
			Rights: u.Rights,
		},
		TokenID: tokenID,
	}
}
