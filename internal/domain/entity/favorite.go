package entity

// FavoriteEntry is a device-local snapshot of a place the user marked as awaited.
// It is an independent copy and is never synced with later edits or deletes of the place.
type FavoriteEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Expanded    bool   `json:"showDescription"`
}

// NewFavoriteEntry snapshots the fields of place that the favorites list shows.
func NewFavoriteEntry(place Place) FavoriteEntry {
	return FavoriteEntry{
		ID:          place.ID,
		Name:        place.Name,
		Description: place.Description,
		Type:        place.Type,
	}
}
