package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *ActorClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseActorToken_RoundTrip(t *testing.T) {
	signed := signToken(t, &ActorClaims{
		ActorID:     "client-1",
		Role:        "client",
		CompanyName: "Transportadora Teste",
		Email:       "ana@teste.com.br",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	claims, err := ParseActorToken(signed, testSecret)

	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ActorID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "Transportadora Teste", claims.CompanyName)
	assert.False(t, claims.IsManager())
}

func TestParseActorToken_SubjectFallback(t *testing.T) {
	signed := signToken(t, &ActorClaims{
		Role: "client",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "client-2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	claims, err := ParseActorToken(signed, testSecret)

	require.NoError(t, err)
	assert.Equal(t, "client-2", claims.ActorID)
}

func TestParseActorToken_WrongSecret(t *testing.T) {
	signed := signToken(t, &ActorClaims{ActorID: "client-1"}, testSecret)

	_, err := ParseActorToken(signed, "other-secret")
	assert.Error(t, err)
}

func TestParseActorToken_Expired(t *testing.T) {
	signed := signToken(t, &ActorClaims{
		ActorID: "client-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	_, err := ParseActorToken(signed, testSecret)
	assert.Error(t, err)
}

func TestParseActorToken_Garbage(t *testing.T) {
	_, err := ParseActorToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestIsManager(t *testing.T) {
	assert.True(t, (&ActorClaims{Role: "manager"}).IsManager())
	assert.False(t, (&ActorClaims{Role: "client"}).IsManager())
	assert.False(t, (&ActorClaims{}).IsManager())
}
