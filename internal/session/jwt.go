package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Claims are the token claims the session adapter understands. Role is the
// optional hint legacy front ends stash in the token when an account record
// carries no role of its own.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// FromToken validates a signed bearer token and returns a store-backed
// provider for the principal it names. This is a session adapter, not an
// authentication flow: tokens are only consumed here, never issued.
func FromToken(tokenString, secret string, client store.Client) (*StoreBacked, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token carries no subject")
	}

	return &StoreBacked{
		Principal: &types.Principal{
			ID:          claims.Subject,
			Email:       claims.Email,
			DisplayName: claims.Name,
		},
		Hint:   claims.Role,
		Client: client,
	}, nil
}
