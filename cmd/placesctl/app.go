package main

import (
	"context"
	"io"
	"log/slog"

	"placebook/config"
	"placebook/internal/domain/repository"
	"placebook/internal/infra/auth"
	"placebook/internal/infra/kv"
	logs "placebook/internal/infra/log"
	"placebook/internal/infra/navigation"
	"placebook/internal/infra/remote"
	"placebook/internal/usecase"
	"placebook/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// app is one process's wiring of the client: the directory, session and
// favorites share the store and the token it holds.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	session   usecase.SessionUsecase
	directory usecase.PlaceDirectory
	favorites usecase.FavoritesUsecase
	out       io.Writer

	// stop releases what newApp opened; nil for apps built by wireApp alone
	stop func(ctx context.Context) error
}

func newApp(ctx context.Context, out io.Writer) (*app, error) {
	var (
		cfg    *config.Config
		logger *slog.Logger
		store  repository.KeyValueStore
		client repository.PlaceRemote
	)

	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			remote.NewClient,
		),
		kv.Module,
		fx.Populate(&cfg, &logger, &store, &client),
	)
	if err := fxApp.Err(); err != nil {
		return nil, errors.Wrap(err, "wire client")
	}
	if err := fxApp.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "start client")
	}

	a := wireApp(cfg, logger, store, client, out)
	a.stop = fxApp.Stop

	return a, nil
}

// wireApp builds the usecases over an already opened store and remote
func wireApp(cfg *config.Config, logger *slog.Logger, store repository.KeyValueStore, client repository.PlaceRemote, out io.Writer) *app {
	tokens := auth.NewStoredTokenProvider(store)
	identity := impl.NewUserIdentity(client, tokens, logger)
	directory := impl.NewPlaceDirectory(client, tokens, identity, cfg, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		session:   impl.NewSessionService(client, store, identity, directory, logger),
		directory: directory,
		favorites: impl.NewFavoritesService(store, navigation.NewLoggingNavigator(logger), cfg, logger),
		out:       out,
	}
}

func (a *app) close() {
	if a.stop == nil {
		return
	}

	// the store closes on stop
	if err := a.stop(context.Background()); err != nil {
		a.logger.Warn("Failed to close local storage", slog.Any("error", err))
	}
}
