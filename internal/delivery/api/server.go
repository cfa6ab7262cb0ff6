// Package api is the development places service: an echo server exposing the
// REST surface the client consumes.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"placebook/config"
	"placebook/internal/delivery"
	apimiddleware "placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router"
	"placebook/internal/delivery/api/validator"
	"placebook/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const (
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 60 * time.Second
)

// Server is the echo server of the development backend
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

var _ delivery.Delivery = (*Server)(nil)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (*Server, error) {
	if params.Cfg.Backend == nil {
		return nil, errors.New("backend config is required")
	}
	params.Cfg.ApplyDefaults()

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.IdleTimeout = idleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.Backend.BodyLimit))

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &Server{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Handler exposes the routed echo instance, which tests mount on httptest servers
func (s *Server) Handler() http.Handler {
	return s.server
}

func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Backend.Port))
	s.logger.Info("Starting places HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: idleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down places HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
