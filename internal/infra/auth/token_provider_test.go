package auth

import (
	"context"
	"testing"

	"placebook/internal/domain/repository"
	"placebook/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredTokenProvider(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	provider := NewStoredTokenProvider(store)

	_, ok, err := provider.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, repository.KeyToken, `"jwt-value"`))
	token, ok, err := provider.Token(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-value", token)

	require.NoError(t, store.Set(ctx, repository.KeyToken, "raw-value"))
	token, ok, err = provider.Token(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "raw-value", token)

	require.NoError(t, store.Set(ctx, repository.KeyToken, `""`))
	_, ok, err = provider.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticTokenProvider(t *testing.T) {
	token, ok, err := NewStaticTokenProvider(" tok ").Token(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	_, ok, _ = NewStaticTokenProvider("").Token(context.Background())
	assert.False(t, ok)
}
