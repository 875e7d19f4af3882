package auth

import (
	"testing"
	"time"

	"ramahomes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCfg() *config.JWTConfig {
	return &config.JWTConfig{Secret: "unit-test-secret", Expiry: time.Hour, Issuer: "ramahomes"}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testCfg()

	token, err := GenerateToken(cfg, 12)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), adminID)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testCfg()
	cfg.Expiry = -time.Minute

	token, err := GenerateToken(cfg, 12)
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testCfg(), 12)
	require.NoError(t, err)

	other := testCfg()
	other.Secret = "a-different-secret"
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not.a.jwt", "abc"} {
		_, err := ParseToken(testCfg(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
