package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(42, "user", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "user", claims["role"])
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "admin", "right-secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	token, expiry, err := GenerateRefreshToken(7, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiry, int64(0))

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
}
