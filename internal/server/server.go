package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"finwise-tips/internal/config"
	"finwise-tips/internal/handlers"
	"finwise-tips/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "1M"

// Dependencies are the request handlers and the metrics source exposed by the server
type Dependencies struct {
	Tips     *handlers.TipsHandler
	Health   *handlers.HealthCheckHandler
	Gatherer prometheus.Gatherer
}

// Server is the HTTP surface of the tips service
type Server struct {
	echo    *echo.Echo
	limiter *middleware.RateLimiter
	cfg     *config.Config
	logger  *slog.Logger
}

// New builds the echo instance with the middleware chain and all routes registered
func New(cfg *config.Config, deps Dependencies, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	// Client supplied forwarding headers are ignored; the peer address keys the rate limiter
	e.IPExtractor = echo.ExtractIPDirect()

	// RequestID runs first so every later layer, panic responses included, sees the trace ID
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowCredentials: true,
		ExposeHeaders:    []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	registerRoutes(e, limiter, deps)

	return &Server{echo: e, limiter: limiter, cfg: cfg, logger: logger}
}

func registerRoutes(e *echo.Echo, limiter *middleware.RateLimiter, deps Dependencies) {
	e.GET("/", deps.Health.Root)
	e.GET("/health", deps.Health.HealthCheck)

	e.POST("/generate-tips", deps.Tips.GenerateTips, limiter.Middleware())

	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}

// ServeHTTP lets the server be driven directly, e.g. by httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address and blocks until the server stops.
// A graceful Shutdown is not reported as an error.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Address(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	s.logger.Info("Starting FinWise AI tips service",
		"address", srv.Addr,
		"environment", s.cfg.Server.Environment,
		"model", s.cfg.LLM.Model,
	)

	if err := s.echo.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests and stops background work
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down FinWise AI tips service")
	defer s.limiter.Stop()
	return s.echo.Shutdown(ctx)
}
