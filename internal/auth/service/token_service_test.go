package service

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateToken(t *testing.T) {
	svc := NewTokenService()

	plainToken, tokenHash, err := svc.GenerateToken()

	require.NoError(t, err)
	assert.NotEmpty(t, plainToken)
	assert.NotEmpty(t, tokenHash)
	assert.NotEqual(t, plainToken, tokenHash)
	assert.Equal(t, svc.HashToken(plainToken), tokenHash)
}

func TestTokenService_GenerateToken_Unique(t *testing.T) {
	svc := NewTokenService()

	first, _, err := svc.GenerateToken()
	require.NoError(t, err)
	second, _, err := svc.GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_HashToken(t *testing.T) {
	svc := NewTokenService()

	expected := sha256.Sum256([]byte("my-token"))

	assert.Equal(t, hex.EncodeToString(expected[:]), svc.HashToken("my-token"))
	// Deterministic
	assert.Equal(t, svc.HashToken("my-token"), svc.HashToken("my-token"))
	assert.NotEqual(t, svc.HashToken("my-token"), svc.HashToken("other-token"))
}
