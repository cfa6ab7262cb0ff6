// Package memory holds the in-process stores of the development backend.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"placebook/internal/domain/entity"
	"placebook/internal/domain/repository"

	"github.com/google/uuid"
)

type placeStore struct {
	mu     sync.RWMutex
	places map[string]*entity.Place
	order  []string
	now    func() time.Time
}

// NewPlaceStore creates an empty place store
func NewPlaceStore() repository.PlaceStore {
	return &placeStore{
		places: make(map[string]*entity.Place),
		now:    time.Now,
	}
}

func (s *placeStore) CreatePlace(_ context.Context, place *entity.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	place.ID = uuid.NewString()
	place.CreatedAt = s.now().UTC()
	place.UpdatedAt = place.CreatedAt

	stored := *place
	s.places[place.ID] = &stored
	s.order = append(s.order, place.ID)

	return nil
}

func (s *placeStore) FindAllPlaces(_ context.Context) ([]*entity.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	places := make([]*entity.Place, 0, len(s.order))
	for _, id := range s.order {
		p := *s.places[id]
		places = append(places, &p)
	}

	return places, nil
}

func (s *placeStore) FindPlaceByID(_ context.Context, id string) (*entity.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.places[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}
	p := *stored

	return &p, nil
}

func (s *placeStore) UpdatePlace(_ context.Context, place *entity.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.places[place.ID]
	if !ok {
		return repository.ErrPlaceNotFound
	}

	place.CreatedAt = stored.CreatedAt
	place.UpdatedAt = s.now().UTC()

	updated := *place
	s.places[place.ID] = &updated

	return nil
}

func (s *placeStore) DeletePlace(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return repository.ErrPlaceNotFound
	}

	delete(s.places, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})

	return nil
}
