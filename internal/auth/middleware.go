package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyActorClaims is the gin context key under which validated actor
// claims are stored.
const ContextKeyActorClaims = "actor_claims"

// Middleware resolves the acting client from a bearer token
type Middleware struct {
	secret string
}

// NewMiddleware creates a new actor-identity middleware
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// OptionalActor parses a bearer token if present and sets actor context;
// requests without a valid token proceed anonymously.
func (m *Middleware) OptionalActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := ParseActorToken(tokenString, m.secret)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextKeyActorClaims, claims)
		c.Set("actor_id", claims.ActorID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireManager rejects requests whose actor does not hold the manager role.
// Requests without any actor context are rejected as unauthorized.
func (m *Middleware) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ActorFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !claims.IsManager() {
			c.JSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext returns the validated actor claims, or nil when the
// request is anonymous.
func ActorFromContext(c *gin.Context) *ActorClaims {
	value, exists := c.Get(ContextKeyActorClaims)
	if !exists {
		return nil
	}
	claims, ok := value.(*ActorClaims)
	if !ok {
		return nil
	}
	return claims
}
