package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/newrelic/go-agent/v3/newrelic"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/delivery/http/handler"
	"github.com/trip-aggregator/internal/delivery/http/middleware"
	"github.com/trip-aggregator/internal/pkg/errors"
	"github.com/trip-aggregator/internal/pkg/utils"
)

// Handlers - набор обработчиков, которые регистрирует сервер
type Handlers struct {
	Trip       *handler.TripHandler
	FareRecord *handler.FareRecordHandler
	Lookup     *handler.LookupHandler
	Health     *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app       *fiber.App
	config    *config.Config
	logger    *zap.Logger
	nrApp     *newrelic.Application
	allowlist *middleware.OriginAllowlist
	handlers  Handlers
}

// NewServer - создание нового HTTP сервера. nrApp может быть nil.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	nrApp *newrelic.Application,
	allowlist *middleware.OriginAllowlist,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Aggregator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Trip.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:       app,
		config:    cfg,
		logger:    logger,
		nrApp:     nrApp,
		allowlist: allowlist,
		handlers:  handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.NewRelic(s.nrApp))
	s.app.Use(middleware.CORS(s.allowlist))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Trip
	api.Get("/trip", s.handlers.Trip.GetTrip)
	api.Post("/trip", s.handlers.Trip.PostTrip)
	api.Get("/fare", s.handlers.Trip.GetFare)

	// Lookups
	api.Get("/geocode", s.handlers.Lookup.Geocode)
	api.Post("/geocode", s.handlers.Lookup.Geocode)
	api.Get("/geocode/:address", s.handlers.Lookup.GeocodeByPath)
	api.Get("/weather", s.handlers.Lookup.Weather)
	api.Get("/news", s.handlers.Lookup.News)
	api.Get("/places", s.handlers.Lookup.Places)

	// Fare records
	fares := api.Group("/fares")
	fares.Post("/", s.handlers.FareRecord.Create)
	fares.Get("/", s.handlers.FareRecord.List)
	fares.Get("/:id", s.handlers.FareRecord.Get)
	fares.Put("/:id", s.handlers.FareRecord.Update)
	fares.Patch("/:id", s.handlers.FareRecord.Update)
	fares.Delete("/:id", s.handlers.FareRecord.Delete)
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, паника) в общем формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if !stderrors.As(err, &fiberErr) {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return utils.SendError(c, err)
		}

		code := errors.CodeInternalServer
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			code = errors.CodeRouteNotFound
		case fiberErr.Code == fiber.StatusMethodNotAllowed:
			code = errors.CodeMethodNotAllowed
		case fiberErr.Code < fiber.StatusInternalServerError:
			code = errors.CodeInvalidInput
		}

		if fiberErr.Code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", fiberErr.Code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, errors.New(code, fiberErr.Message, fiberErr.Code))
	}
}
