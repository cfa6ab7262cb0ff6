// Package view derives what the screens show from directory and favorites state.
// Every function here is pure.
package view

import (
	"placebook/internal/domain/entity"
	"placebook/internal/geo"
)

// Description limits of the two lists that truncate text
const (
	ListDescriptionLimit      = 30
	FavoritesDescriptionLimit = 100
)

// Ellipsis is appended to truncated text
const Ellipsis = "..."

// Truncated is a description prepared for display
type Truncated struct {
	Shown       string
	IsTruncated bool
}

// TruncateDescription keeps the first limit characters of text and appends
// Ellipsis when text is longer. Characters are runes, not bytes.
func TruncateDescription(text string, limit int) Truncated {
	if limit < 0 {
		limit = 0
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return Truncated{Shown: text}
	}

	return Truncated{
		Shown:       string(runes[:limit]) + Ellipsis,
		IsTruncated: true,
	}
}

// FilterByOwner returns the places created by userID when showOwnedOnly is set,
// and every place otherwise. The input is never modified.
func FilterByOwner(places []entity.Place, userID string, showOwnedOnly bool) []entity.Place {
	out := make([]entity.Place, 0, len(places))
	for _, p := range places {
		if showOwnedOnly && !p.IsOwnedBy(userID) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// PlaceCard is one row of the places list
type PlaceCard struct {
	Place       entity.Place
	Owned       bool
	CanEdit     bool
	Expanded    bool
	Description Truncated
}

// ListOptions controls ProjectList
type ListOptions struct {
	User          entity.User
	OwnedOnly     bool
	AdminOverride bool

	// Expanded holds the ids whose description is shown in full
	Expanded map[string]bool

	// DescriptionLimit defaults to ListDescriptionLimit
	DescriptionLimit int
}

// ProjectList filters places and prepares each row in one pass
func ProjectList(places []entity.Place, opts ListOptions) []PlaceCard {
	limit := opts.DescriptionLimit
	if limit <= 0 {
		limit = ListDescriptionLimit
	}

	// Nobody is signed in: nothing is "mine", not even places without a creator.
	anonymous := opts.User.ID == ""
	if anonymous && opts.OwnedOnly {
		return []PlaceCard{}
	}

	filtered := FilterByOwner(places, opts.User.ID, opts.OwnedOnly)
	cards := make([]PlaceCard, 0, len(filtered))
	for _, p := range filtered {
		expanded := opts.Expanded[p.ID]

		description := Truncated{Shown: p.Description}
		if !expanded {
			description = TruncateDescription(p.Description, limit)
		}

		cards = append(cards, PlaceCard{
			Place:       p,
			Owned:       !anonymous && p.IsOwnedBy(opts.User.ID),
			CanEdit:     opts.User.CanManage(p, opts.AdminOverride),
			Expanded:    expanded,
			Description: description,
		})
	}

	return cards
}

// FavoriteCard is one row of the awaited places list
type FavoriteCard struct {
	Entry       entity.FavoriteEntry
	Description Truncated
}

// ProjectFavorites prepares the awaited list; an expanded entry shows its full description
func ProjectFavorites(entries []entity.FavoriteEntry, limit int) []FavoriteCard {
	if limit <= 0 {
		limit = FavoritesDescriptionLimit
	}

	cards := make([]FavoriteCard, 0, len(entries))
	for _, e := range entries {
		description := Truncated{Shown: e.Description}
		if !e.Expanded {
			description = TruncateDescription(e.Description, limit)
		}

		cards = append(cards, FavoriteCard{Entry: e, Description: description})
	}

	return cards
}

// Region returns the map viewport framing places, or fallback for an empty list
func Region(places []entity.Place, fallback geo.Region) geo.Region {
	points := make([]entity.LatLng, 0, len(places))
	for _, p := range places {
		points = append(points, p.Location)
	}

	return geo.RegionFor(points, fallback)
}
