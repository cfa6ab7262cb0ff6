package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("amira-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "amira-pass", hash)

	assert.True(t, hasher.Check("amira-pass", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("amira-pass", "not-a-hash"))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash("")
	assert.Error(t, err)
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
