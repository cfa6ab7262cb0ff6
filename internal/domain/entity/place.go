// Package entity contains the core business objects of the project.
package entity

import "time"

// Known place categories. Unknown values are passed through untouched.
const (
	PlaceTypeR1          = "r+1"
	PlaceTypeR2          = "r+2"
	PlaceTypeR3          = "r+3"
	PlaceTypeTerrainVide = "terrain vide"
)

// KnownPlaceTypes lists the categories offered when placing a marker.
func KnownPlaceTypes() []string {
	return []string{PlaceTypeR1, PlaceTypeR2, PlaceTypeR3, PlaceTypeTerrainVide}
}

// LatLng is the internal coordinate shape. Raw wire coordinates never leave the geo package.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Owner references the user that created a place.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Place is a server-owned geotagged record.
type Place struct {
	ID          string    // Server-assigned identifier, never fabricated locally.
	Name        string    // Display name.
	Description string    // Free-form description.
	Type        string    // Category, e.g. "r+1" or "terrain vide".
	Address     string    // Human-readable address.
	Location    LatLng    // Normalized location.
	CreatedBy   Owner     // The user that created this place.
	CreatedAt   time.Time // Server-assigned creation time.
	UpdatedAt   time.Time // Server-assigned modification time.
}

// PlaceDraft is what a user submits to create a place.
type PlaceDraft struct {
	Name        string `validate:"required"`
	Description string
	Type        string
	Address     string
	Location    LatLng
}

// PlacePatch holds the editable fields of a place. Nil fields are left unchanged.
type PlacePatch struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p PlacePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// IsOwnedBy reports whether the creator id equals userID.
func (p Place) IsOwnedBy(userID string) bool {
	return p.CreatedBy.ID == userID
}
