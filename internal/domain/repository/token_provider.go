package repository

import "context"

// TokenProvider supplies the bearer token of the signed-in user.
type TokenProvider interface {
	// Token returns the current token; ok is false when nobody is signed in.
	Token(ctx context.Context) (token string, ok bool, err error)
}
