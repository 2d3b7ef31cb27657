package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/config"
)

func setTestConfig(t *testing.T, secret string) {
	t.Helper()

	previous := config.AppConfig

	var cfg config.Config
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 60
	config.AppConfig = &cfg

	t.Cleanup(func() { config.AppConfig = previous })
}

func TestTokenRoundtrip(t *testing.T) {
	setTestConfig(t, "jwt-test-secret")

	token, err := GenerateToken("user-42", "coach")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "coach", claims.Role)
	assert.Equal(t, "user-42", claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setTestConfig(t, "first-secret")
	token, err := GenerateToken("user-42", "student")
	require.NoError(t, err)

	setTestConfig(t, "second-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	setTestConfig(t, "jwt-test-secret")

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
