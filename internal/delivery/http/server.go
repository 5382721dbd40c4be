package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/horus-listing/internal/config"
	"github.com/horus-listing/internal/delivery/http/handler"
	"github.com/horus-listing/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthCheck - проверка зависимостей для /api/v1/health
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health HealthCheck

	// Handlers
	propertyHandler  *handler.PropertyHandler
	referenceHandler *handler.ReferenceHandler
	adminHandler     *handler.AdminHandler
	statsHandler     *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthCheck,
	propertyHandler *handler.PropertyHandler,
	referenceHandler *handler.ReferenceHandler,
	adminHandler *handler.AdminHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Horus Listing",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
		// Значения из c.Params и c.Query попадают в ключи кеша справочника
		Immutable: true,
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		health:           health,
		propertyHandler:  propertyHandler,
		referenceHandler: referenceHandler,
		adminHandler:     adminHandler,
		statsHandler:     statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Публичный поиск по коду, любой другой метод получает 405
	s.app.All("/api/property", s.propertyHandler.Lookup)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler)

	// Catalog
	api.Get("/properties", s.propertyHandler.List)
	api.Get("/properties/sections", s.propertyHandler.Sections)
	api.Get("/properties/filters", s.propertyHandler.Filters)
	api.Get("/properties/:id", s.propertyHandler.Get)

	// Reference data
	api.Get("/cities", s.referenceHandler.Cities)
	api.Get("/cities/:id/areas", s.referenceHandler.AreasByCity)
	api.Get("/areas", s.referenceHandler.AreasByCityName)

	admin := api.Group("/admin", middleware.AdminAuth(s.config.Admin.APIKey))

	admin.Get("/properties", s.adminHandler.ListProperties)
	admin.Get("/properties/next-code", s.adminHandler.NextCode)
	admin.Get("/properties/:id", s.adminHandler.GetProperty)
	admin.Post("/properties", s.adminHandler.CreateProperty)
	admin.Put("/properties/:id", s.adminHandler.UpdateProperty)
	admin.Delete("/properties/:id", s.adminHandler.DeleteProperty)

	admin.Post("/cities", s.referenceHandler.CreateCity)
	admin.Put("/cities/:id", s.referenceHandler.UpdateCity)
	admin.Delete("/cities/:id", s.referenceHandler.DeleteCity)
	admin.Post("/cities/:id/areas", s.referenceHandler.CreateArea)
	admin.Put("/areas/:id", s.referenceHandler.UpdateArea)
	admin.Delete("/areas/:id", s.referenceHandler.DeleteArea)
	admin.Post("/cache/clear", s.referenceHandler.ClearCache)

	// Stats
	admin.Get("/stats", s.statsHandler.GetStatistics)
}

// healthHandler godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthHandler(c *fiber.Ctx) error {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		if err := s.health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// App - fiber приложение, используется в тестах через app.Test
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

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch {
			case code == fiber.StatusNotFound:
				errCode = "ROUTE_NOT_FOUND"
			case code < fiber.StatusInternalServerError:
				errCode = "BAD_REQUEST"
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
				"message": message,
			},
		})
	}
}
