package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamydestiny/config"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken(map[string]interface{}{"email": "a@b.com", "role": "guest"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims["email"])
	assert.Equal(t, "guest", claims["role"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "another-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}
