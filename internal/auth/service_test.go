package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_Success(t *testing.T) {
	svc := NewService(testSecret)
	signed := signToken(t, testSecret, Claims{
		UserID:   "8c2e8e9e-1111-4222-8333-944444444444",
		Username: "mkowalski",
		Role:     "planner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := svc.ValidateToken(signed)

	require.NoError(t, err)
	assert.Equal(t, "mkowalski", claims.Username)
	assert.Equal(t, "planner", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewService(testSecret)
	signed := signToken(t, "other-secret", Claims{Username: "mkowalski"})

	_, err := svc.ValidateToken(signed)

	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService(testSecret)
	signed := signToken(t, testSecret, Claims{
		Username: "mkowalski",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := svc.ValidateToken(signed)

	assert.Error(t, err)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	svc := NewService(testSecret)
	// alg=none tokens must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "mkowalski"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)

	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewService(testSecret)

	_, err := svc.ValidateToken("not-a-token")

	assert.Error(t, err)
}
