package repository

import "context"

// Navigation destinations reachable from the core.
const (
	DestinationFavorites = "Favoris"
	DestinationHome      = "Home"
	DestinationLogin     = "LoginScreen"
)

// Navigator moves the user to a named destination.
type Navigator interface {
	Navigate(ctx context.Context, destination string, params map[string]any) error
}
