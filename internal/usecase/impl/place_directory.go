package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/geo"
	"placebook/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// IdentityResolver returns the signed-in user.
type IdentityResolver interface {
	Current(ctx context.Context) (entity.User, error)
}

type placeDirectory struct {
	remote   repository.PlaceRemote
	tokens   repository.TokenProvider
	identity IdentityResolver
	validate *validator.Validate
	config   *config.Config
	logger   *slog.Logger

	// mu guards places and epoch. A response is applied only if epoch has not
	// moved since its request was issued.
	mu     sync.RWMutex
	places []entity.Place
	epoch  uint64
}

// NewPlaceDirectory creates the process-wide place directory
func NewPlaceDirectory(
	remote repository.PlaceRemote,
	tokens repository.TokenProvider,
	identity IdentityResolver,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PlaceDirectory {
	cfg.ApplyDefaults()

	return &placeDirectory{
		remote:   remote,
		tokens:   tokens,
		identity: identity,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		config:   cfg,
		logger:   logger,
	}
}

// ListAll fetches the whole collection and swaps it in
func (d *placeDirectory) ListAll(ctx context.Context) ([]entity.Place, error) {
	epoch := d.currentEpoch()

	records, err := d.remote.ListPlaces(ctx)
	if err != nil {
		d.logger.Warn("[PlaceDirectory] Failed to fetch places, keeping previous collection", slog.Any("error", err))

		return nil, domainerrors.Rekind(err, domainerrors.ErrFetch)
	}

	places := make([]entity.Place, 0, len(records))
	for _, record := range records {
		place, err := toPlace(record)
		if err != nil {
			d.logger.Warn("[PlaceDirectory] Rejected place with bad location",
				slog.String("place_id", record.ID),
				slog.Any("error", err),
			)

			return nil, domainerrors.NewRemoteError(domainerrors.ErrFetch, 0, "", errors.Wrapf(err, "place %s", record.ID))
		}
		places = append(places, place)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.epoch != epoch {
		return nil, domainerrors.ErrSessionEnded
	}
	d.places = places

	d.logger.Debug("[PlaceDirectory] Places replaced", slog.Int("count", len(places)))

	return slices.Clone(places), nil
}

// Create submits draft and appends the server's record
func (d *placeDirectory) Create(ctx context.Context, draft entity.PlaceDraft) (entity.Place, error) {
	if err := d.validate.Struct(draft); err != nil {
		return entity.Place{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	location, err := geo.ToWire(draft.Location)
	if err != nil {
		return entity.Place{}, err
	}

	user, err := d.identity.Current(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAuthRequired) || errors.Is(err, domainerrors.ErrSessionEnded) {
			return entity.Place{}, err
		}

		return entity.Place{}, domainerrors.Rekind(err, domainerrors.ErrCreate)
	}

	epoch := d.currentEpoch()

	record, err := d.remote.CreatePlace(ctx, repository.PlaceInput{
		Name:        draft.Name,
		Description: draft.Description,
		Type:        draft.Type,
		Address:     draft.Address,
		CreatedBy:   user.ID,
		Location:    location,
	})
	if err != nil {
		d.logger.Warn("[PlaceDirectory] Failed to create place", slog.String("name", draft.Name), slog.Any("error", err))

		return entity.Place{}, domainerrors.Rekind(err, domainerrors.ErrCreate)
	}

	place, err := toPlace(record)
	if err != nil {
		return entity.Place{}, domainerrors.NewRemoteError(domainerrors.ErrCreate, 0, "", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.epoch != epoch {
		return entity.Place{}, domainerrors.ErrSessionEnded
	}

	// A list that raced this create may already hold the record.
	if idx := d.indexOf(place.ID); idx >= 0 {
		d.places[idx] = place
	} else {
		d.places = append(d.places, place)
	}

	d.logger.Info("[PlaceDirectory] Place created", slog.String("place_id", place.ID))

	return place, nil
}

// CreateAndRefresh creates, then lists again once the server has had time to settle
func (d *placeDirectory) CreateAndRefresh(ctx context.Context, draft entity.PlaceDraft) (entity.Place, []entity.Place, error) {
	place, err := d.Create(ctx, draft)
	if err != nil {
		return entity.Place{}, nil, err
	}

	timer := time.NewTimer(d.config.Places.RefreshDelay)
	select {
	case <-ctx.Done():
		timer.Stop()

		return place, nil, errors.WithStack(ctx.Err())
	case <-timer.C:
	}

	places, err := d.ListAll(ctx)
	if err != nil {
		return place, nil, err
	}

	return place, places, nil
}

// Update patches a place and replaces the local entry by the returned id
func (d *placeDirectory) Update(ctx context.Context, id string, patch entity.PlacePatch) (entity.Place, error) {
	if patch.IsEmpty() {
		return entity.Place{}, domainerrors.ErrUpdate.WithDetails("nothing to update")
	}

	token, err := requireToken(ctx, d.tokens)
	if err != nil {
		return entity.Place{}, err
	}

	epoch := d.currentEpoch()

	record, err := d.remote.UpdatePlace(ctx, token, id, repository.PlaceChanges{
		Name:        patch.Name,
		Description: patch.Description,
	})
	if err != nil {
		d.logger.Warn("[PlaceDirectory] Failed to update place", slog.String("place_id", id), slog.Any("error", err))

		return entity.Place{}, domainerrors.Rekind(err, domainerrors.ErrUpdate)
	}

	place, err := toPlace(record)
	if err != nil {
		return entity.Place{}, domainerrors.NewRemoteError(domainerrors.ErrUpdate, 0, "", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.epoch != epoch {
		return entity.Place{}, domainerrors.ErrSessionEnded
	}

	idx := d.indexOf(place.ID)
	if idx < 0 {
		return entity.Place{}, domainerrors.ErrNotFound.WithDetails("no local place with id " + place.ID)
	}
	d.places[idx] = place

	return place, nil
}

// Delete removes a place; an id the server no longer knows counts as deleted
func (d *placeDirectory) Delete(ctx context.Context, id string) error {
	token, err := requireToken(ctx, d.tokens)
	if err != nil {
		return err
	}

	epoch := d.currentEpoch()

	if err := d.remote.DeletePlace(ctx, token, id); err != nil {
		if !isRemoteNotFound(err) {
			d.logger.Warn("[PlaceDirectory] Failed to delete place", slog.String("place_id", id), slog.Any("error", err))

			return domainerrors.Rekind(err, domainerrors.ErrDelete)
		}
		d.logger.Debug("[PlaceDirectory] Place already gone on server", slog.String("place_id", id))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.epoch != epoch {
		return domainerrors.ErrSessionEnded
	}

	d.places = slices.DeleteFunc(d.places, func(p entity.Place) bool {
		return p.ID == id
	})

	return nil
}

// Places returns a copy of the collection
func (d *placeDirectory) Places() []entity.Place {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.places)
}

// Get returns the local place with id
func (d *placeDirectory) Get(id string) (entity.Place, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return entity.Place{}, false
	}

	return d.places[idx], true
}

// IsOwnedBy compares the creator id
func (d *placeDirectory) IsOwnedBy(place entity.Place, userID string) bool {
	return place.IsOwnedBy(userID)
}

// CanManage gates edit and delete actions
func (d *placeDirectory) CanManage(place entity.Place, user entity.User) bool {
	return user.CanManage(place, d.config.Places.AdminOverride)
}

// Reset clears the collection and invalidates in-flight calls
func (d *placeDirectory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.places = nil
	d.epoch++

	d.logger.Debug("[PlaceDirectory] Session reset", slog.Uint64("epoch", d.epoch))
}

func (d *placeDirectory) currentEpoch() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.epoch
}

// indexOf must be called with mu held
func (d *placeDirectory) indexOf(id string) int {
	return slices.IndexFunc(d.places, func(p entity.Place) bool {
		return p.ID == id
	})
}

// toPlace normalizes a server record. It is the only place records become entities.
func toPlace(record repository.PlaceRecord) (entity.Place, error) {
	location, err := geo.ToInternal(record.Location)
	if err != nil {
		return entity.Place{}, err
	}

	return entity.Place{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Type:        record.Type,
		Address:     record.Address,
		Location:    location,
		CreatedBy:   record.CreatedBy,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}

func isRemoteNotFound(err error) bool {
	var re *domainerrors.RemoteError

	return errors.As(err, &re) && re.Status == http.StatusNotFound
}
