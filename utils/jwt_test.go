package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "client", "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestGenerateToken_WrongSecretFails(t *testing.T) {
	token, err := GenerateToken(7, "client", "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}
