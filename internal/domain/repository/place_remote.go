// Package repository defines the interfaces for the persistence and remote layers.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"placebook/internal/domain/entity"
	"placebook/internal/geo"
)

// PlaceRecord is a place exactly as the places service returns it. Its
// location is still in wire order and must go through the geo normalizer.
type PlaceRecord struct {
	ID          string
	Name        string
	Description string
	Type        string
	Address     string
	Location    geo.Point
	CreatedBy   entity.Owner
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlaceInput is the body of a create request.
type PlaceInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	CreatedBy   string    `json:"createdBy"`
	Location    geo.Point `json:"location"`
}

// PlaceChanges is the body of an update request; only set fields are sent.
type PlaceChanges struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PlaceRemote is the places service as seen by the client core.
// Every failure is a *errors.RemoteError carrying the HTTP status and server message.
type PlaceRemote interface {
	// ListPlaces fetches the whole place collection.
	ListPlaces(ctx context.Context) ([]PlaceRecord, error)

	// CreatePlace submits a new place and returns the server's record.
	CreatePlace(ctx context.Context, input PlaceInput) (PlaceRecord, error)

	// UpdatePlace patches a place with a bearer token.
	UpdatePlace(ctx context.Context, token, id string, changes PlaceChanges) (PlaceRecord, error)

	// DeletePlace removes a place with a bearer token.
	DeletePlace(ctx context.Context, token, id string) error

	// CurrentUser returns the account behind token.
	CurrentUser(ctx context.Context, token string) (entity.User, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (token string, user entity.User, err error)
}
