package remote

import (
	"bytes"
	"encoding/json"
	"time"

	"placebook/internal/domain/entity"
	"placebook/internal/domain/repository"
	"placebook/internal/geo"

	"github.com/pkg/errors"
)

// PlaceWire is a place as serialized by the places service. Documents coming
// straight out of MongoDB carry "_id" instead of "id".
type PlaceWire struct {
	ID          string    `json:"id,omitempty"`
	MongoID     string    `json:"_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	Location    geo.Point `json:"location"`
	CreatedBy   OwnerRef  `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Identifier returns whichever id field the server filled
func (w PlaceWire) Identifier() string {
	if w.ID != "" {
		return w.ID
	}

	return w.MongoID
}

// Record converts the wire document into the repository record.
// The location is copied as is; normalization happens in the geo package.
func (w PlaceWire) Record() repository.PlaceRecord {
	return repository.PlaceRecord{
		ID:          w.Identifier(),
		Name:        w.Name,
		Description: w.Description,
		Type:        w.Type,
		Address:     w.Address,
		Location:    w.Location,
		CreatedBy:   entity.Owner{ID: w.CreatedBy.ID, Name: w.CreatedBy.Name},
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// OwnerRef is the createdBy field: a populated user object or a bare id.
type OwnerRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts "abc", {"_id":"abc","name":"x"} and {"id":"abc"}
func (o *OwnerRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = OwnerRef{}

		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return errors.WithStack(err)
		}
		*o = OwnerRef{ID: id}

		return nil
	}

	var obj struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "decode createdBy")
	}

	o.ID = obj.ID
	if o.ID == "" {
		o.ID = obj.MongoID
	}
	o.Name = obj.Name

	return nil
}

// UserWire is an account as serialized by the places service
type UserWire struct {
	ID      string `json:"id,omitempty"`
	MongoID string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// User converts the wire document to the entity
func (w UserWire) User() entity.User {
	id := w.ID
	if id == "" {
		id = w.MongoID
	}

	return entity.User{
		ID:    id,
		Name:  w.Name,
		Email: w.Email,
		Role:  w.Role,
	}
}

// placeListBody is the GET /places response
type placeListBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Places []PlaceWire `json:"places"`
	} `json:"data"`
}

// placeBody decodes either a bare place or {"data":{"place":{...}}}
type placeBody struct {
	PlaceWire
	Data *struct {
		Place *PlaceWire `json:"place"`
	} `json:"data"`
}

func (b placeBody) place() PlaceWire {
	if b.Data != nil && b.Data.Place != nil {
		return *b.Data.Place
	}

	return b.PlaceWire
}

// userBody is the GET /users/me response
type userBody struct {
	Status string `json:"status"`
	Data   struct {
		User *UserWire `json:"user"`
	} `json:"data"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginBody is the POST /auth/login response. The token normally sits at the
// top level next to status; some deployments nest it under data.
type loginBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Data    struct {
		Token string    `json:"token"`
		User  *UserWire `json:"user"`
	} `json:"data"`
}

func (b loginBody) token() string {
	if b.Token != "" {
		return b.Token
	}

	return b.Data.Token
}
