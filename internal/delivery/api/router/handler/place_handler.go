package handler

import (
	"log/slog"
	"net/http"

	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/response"
	"placebook/internal/domain/entity"
	"placebook/internal/geo"
	"placebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// PlaceHandler serves the /places resource
type PlaceHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreatePlaceRequest is the body of POST /places
type CreatePlaceRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	Location    geo.Point `json:"location"`
	CreatedBy   string    `json:"createdBy" validate:"required"`
}

// UpdatePlaceRequest is the body of PATCH /places/:id; absent fields are left unchanged
type UpdatePlaceRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

// ListPlaces handles GET /places
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places, err := h.catalogUC.ListPlaces(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		dto, err := toPlaceResponse(place)
		if err != nil {
			h.logger.Warn("[Backend] Skipping place with invalid location",
				slog.String("place_id", place.ID),
				slog.Any("error", err),
			)

			continue
		}
		out = append(out, dto)
	}

	return response.Success(c, http.StatusOK, map[string]any{"places": out})
}

// CreatePlace handles POST /places
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var req CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := geo.ToInternal(req.Location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	place, err := h.catalogUC.CreatePlace(c.Request().Context(), req.CreatedBy, entity.PlaceDraft{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Address:     req.Address,
		Location:    location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.placeResponse(c, http.StatusCreated, place)
}

// UpdatePlace handles PATCH /places/:id
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	place, err := h.catalogUC.UpdatePlace(c.Request().Context(), actor, c.Param("id"), entity.PlacePatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.placeResponse(c, http.StatusOK, place)
}

// DeletePlace handles DELETE /places/:id
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	if err := h.catalogUC.DeletePlace(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *PlaceHandler) placeResponse(c echo.Context, status int, place *entity.Place) error {
	dto, err := toPlaceResponse(place)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, map[string]any{"place": dto})
}
