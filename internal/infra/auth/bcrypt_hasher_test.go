package auth

import (
	"testing"

	"rossimethod/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, hasher.Check("secreto123", hash))
	assert.False(t, hasher.Check("otra-clave", hash))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Out-of-range configured cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secreto123", hash))
}
