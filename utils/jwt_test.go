package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateSessionToken("sess-42", "ann@example.com", time.Hour)
	require.NoError(t, err)

	sessionID, err := ExtractSessionIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", sessionID)
}

func TestSigningKeyFollowsConfiguredSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "first-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateSessionToken("sess-42", "ann@example.com", time.Hour)
	require.NoError(t, err)

	// Rotating the configured secret must invalidate earlier tokens,
	// which only holds if the key is read from config on each use.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ExtractSessionIDFromToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ExtractSessionIDFromToken("not-a-token")
	assert.Error(t, err)
}
