// Package router contains the routes of the development backend.
package router

import (
	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler   *handler.PlaceHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler   *handler.PlaceHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:   params.PlaceHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	// Listing and creating are public; the creator travels in the body.
	placesGroup := e.Group("/places")
	{
		placesGroup.GET("", r.placeHandler.ListPlaces)
		placesGroup.POST("", r.placeHandler.CreatePlace)
		placesGroup.PATCH("/:id", r.placeHandler.UpdatePlace, r.authMiddleware.Authenticate)
		placesGroup.DELETE("/:id", r.placeHandler.DeletePlace, r.authMiddleware.Authenticate)
	}
}
