package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/config"
	"github.com/donor-matching-service/internal/delivery/http/handler"
	"github.com/donor-matching-service/internal/delivery/http/middleware"
	"github.com/donor-matching-service/internal/pkg/metrics"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Collector

	// Handlers
	matchHandler     *handler.MatchHandler
	bloodBankHandler *handler.BloodBankHandler
}

// NewServer - создание нового HTTP сервера. collector может быть nil.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	collector *metrics.Collector,
	matchHandler *handler.MatchHandler,
	bloodBankHandler *handler.BloodBankHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Donor Matching Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		metrics:          collector,
		matchHandler:     matchHandler,
		bloodBankHandler: bloodBankHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"store":  s.config.Store.Driver,
			"time":   time.Now(),
		})
	})

	// Matching routes
	api.Post("/matches/search", s.matchHandler.SearchMatches)
	api.Post("/donors/search", s.matchHandler.SearchDonors)
	api.Post("/oxygen/search", s.matchHandler.SearchOxygen)
	api.Get("/donors/:id", s.matchHandler.GetDonor)
	api.Get("/oxygen/:id", s.matchHandler.GetOxygenSupplier)

	// Blood bank routes; availability регистрируется раньше :id
	api.Get("/blood-banks", s.bloodBankHandler.ListBloodBanks)
	api.Get("/blood-banks/availability", s.bloodBankHandler.CheckAvailability)
	api.Get("/blood-banks/:id", s.bloodBankHandler.GetBloodBank)
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
