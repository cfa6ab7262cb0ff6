// Command placesd runs the development places service the client talks to.
package main

import (
	"context"
	"log/slog"
	"os"

	"placebook/config"
	"placebook/internal/delivery"
	"placebook/internal/delivery/api"
	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router/handler"
	"placebook/internal/domain/repository"
	"placebook/internal/domain/service"
	"placebook/internal/infra/auth"
	logs "placebook/internal/infra/log"
	"placebook/internal/infra/persistence/memory"
	"placebook/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewPlaceStore,
			newUserStore,
		),
	)
}

// newUserStore seeds the accounts listed under backend.users
func newUserStore(cfg *config.Config, hasher service.PasswordHasher) (repository.UserStore, error) {
	if cfg.Backend == nil {
		return nil, errors.New("backend config is required to run placesd")
	}

	return memory.NewUserStore(cfg.Backend.Users, hasher)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

func newPasswordHasher() service.PasswordHasher {
	return auth.NewBcryptHasher(bcrypt.DefaultCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlaceHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.As(new(delivery.Delivery)),
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
