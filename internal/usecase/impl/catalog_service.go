package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/geo"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	places        repository.PlaceStore
	users         repository.UserStore
	adminOverride bool
	logger        *slog.Logger
}

// NewCatalogService creates the place catalog of the development backend
func NewCatalogService(
	places repository.PlaceStore,
	users repository.UserStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		places:        places,
		users:         users,
		adminOverride: cfg.Places.AdminOverride,
		logger:        logger,
	}
}

func (s *catalogService) ListPlaces(ctx context.Context) ([]*entity.Place, error) {
	places, err := s.places.FindAllPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	return places, nil
}

func (s *catalogService) CreatePlace(ctx context.Context, creatorID string, draft entity.PlaceDraft) (*entity.Place, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if err := geo.Validate(draft.Location); err != nil {
		return nil, err
	}

	creator, err := s.users.FindUserByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("createdBy is not a known user")
		}

		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	place := &entity.Place{
		Name:        draft.Name,
		Description: draft.Description,
		Type:        draft.Type,
		Address:     draft.Address,
		Location:    draft.Location,
		CreatedBy:   entity.Owner{ID: creator.ID, Name: creator.Name},
	}
	if err := s.places.CreatePlace(ctx, place); err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	s.logger.Info("[Catalog] Place created",
		slog.String("place_id", place.ID),
		slog.String("created_by", creator.ID),
	)

	return place, nil
}

func (s *catalogService) UpdatePlace(ctx context.Context, actor entity.User, id string, patch entity.PlacePatch) (*entity.Place, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	place, err := s.findManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		place.Name = *patch.Name
	}
	if patch.Description != nil {
		place.Description = *patch.Description
	}

	if err := s.places.UpdatePlace(ctx, place); err != nil {
		return nil, s.storeError("update", err)
	}

	return place, nil
}

func (s *catalogService) DeletePlace(ctx context.Context, actor entity.User, id string) error {
	if _, err := s.findManageable(ctx, actor, id); err != nil {
		return err
	}

	if err := s.places.DeletePlace(ctx, id); err != nil {
		return s.storeError("delete", err)
	}

	s.logger.Info("[Catalog] Place deleted", slog.String("place_id", id), slog.String("actor", actor.ID))

	return nil
}

func (s *catalogService) findManageable(ctx context.Context, actor entity.User, id string) (*entity.Place, error) {
	place, err := s.places.FindPlaceByID(ctx, id)
	if err != nil {
		return nil, s.storeError("find", err)
	}

	if !actor.CanManage(*place, s.adminOverride) {
		return nil, domainerrors.ErrForbidden
	}

	return place, nil
}

func (s *catalogService) storeError(op string, err error) error {
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return domainerrors.ErrNotFound
	}

	return fmt.Errorf("failed to %s place: %w", op, err)
}
