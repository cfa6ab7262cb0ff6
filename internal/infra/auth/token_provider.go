package auth

import (
	"context"
	"encoding/json"
	"strings"

	"placebook/internal/domain/repository"

	"github.com/pkg/errors"
)

// storedTokenProvider reads the token the login flow persisted under "token".
type storedTokenProvider struct {
	store repository.KeyValueStore
}

// NewStoredTokenProvider reads the bearer token from store
func NewStoredTokenProvider(store repository.KeyValueStore) repository.TokenProvider {
	return &storedTokenProvider{store: store}
}

// Token decodes the JSON string written at login. Values written by older
// clients without JSON encoding are used as is.
func (p *storedTokenProvider) Token(ctx context.Context) (string, bool, error) {
	raw, err := p.store.Get(ctx, repository.KeyToken)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "read token")
	}

	token := strings.TrimSpace(raw)
	var decoded string
	if err := json.Unmarshal([]byte(token), &decoded); err == nil {
		token = decoded
	}
	if token == "" || token == "null" {
		return "", false, nil
	}

	return token, true, nil
}

// staticTokenProvider always supplies the same token, e.g. from a flag.
type staticTokenProvider struct {
	token string
}

// NewStaticTokenProvider returns a provider for a fixed token; an empty token means signed out
func NewStaticTokenProvider(token string) repository.TokenProvider {
	return &staticTokenProvider{token: strings.TrimSpace(token)}
}

func (p *staticTokenProvider) Token(context.Context) (string, bool, error) {
	return p.token, p.token != "", nil
}
