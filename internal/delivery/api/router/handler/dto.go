package handler

import (
	"time"

	"placebook/internal/domain/entity"
	"placebook/internal/geo"
)

// PlaceResponse is the wire shape of a place, keyed the way the client expects
type PlaceResponse struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Address     string        `json:"address"`
	Location    geo.Point     `json:"location"`
	CreatedBy   OwnerResponse `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// OwnerResponse is the populated creator of a place
type OwnerResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UserResponse is the public shape of an account
type UserResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toPlaceResponse(p *entity.Place) (PlaceResponse, error) {
	location, err := geo.ToWire(p.Location)
	if err != nil {
		return PlaceResponse{}, err
	}

	return PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Address:     p.Address,
		Location:    location,
		CreatedBy:   OwnerResponse{ID: p.CreatedBy.ID, Name: p.CreatedBy.Name},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
