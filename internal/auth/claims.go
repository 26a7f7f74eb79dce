package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ActorClaims carries the acting client's identity as supplied by the
// identity provider in front of this service.
type ActorClaims struct {
	ActorID     string `json:"actor_id"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	jwt.RegisteredClaims
}

// ParseActorToken validates an HS256 token and extracts the actor claims.
func ParseActorToken(tokenString, secret string) (*ActorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse actor token: %w", err)
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid actor token")
	}
	if claims.ActorID == "" {
		claims.ActorID = claims.Subject
	}
	return claims, nil
}

// IsManager reports whether the actor holds the manager role.
func (c *ActorClaims) IsManager() bool {
	return c.Role == "manager"
}
