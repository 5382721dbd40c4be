package main

// @title Horus Listing API
// @version 1.0.0
// @description Каталог объявлений недвижимости Horus: поиск по коду, фильтры каталога, справочник городов и районов, админка.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/horus-listing/docs"
	"github.com/horus-listing/internal/app"
	"github.com/horus-listing/internal/config"
	httpDelivery "github.com/horus-listing/internal/delivery/http"
	"github.com/horus-listing/internal/delivery/http/handler"
	"github.com/horus-listing/internal/pkg/logger"
	"github.com/horus-listing/internal/repository/cache"
	"github.com/horus-listing/internal/usecase"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Horus Listing")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("backend", cfg.Backend),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to data store
	repos, err := app.NewRepositories(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to data store", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := checkHealth(ctx, repos, redisClient); err != nil {
		log.Fatal("Health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	referenceCache := cache.NewReferenceCache(
		repos.Cities,
		repos.Areas,
		log,
		cfg.Cache.CitiesCacheTTL,
		time.Now,
	)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	propertyUC := usecase.NewPropertyUseCase(
		repos.Properties,
		cacheRepo,
		log,
		cfg.Cache.LookupCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		repos.Properties,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	referenceUC := usecase.NewReferenceUseCase(referenceCache, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	propertyHandler := handler.NewPropertyHandler(propertyUC, log)
	referenceHandler := handler.NewReferenceHandler(referenceUC, log)
	adminHandler := handler.NewAdminHandler(propertyUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	if cfg.Admin.APIKey == "" {
		log.Warn("ADMIN_API_KEY is empty, admin routes will reject every request")
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		func(ctx context.Context) error { return checkHealth(ctx, repos, redisClient) },
		propertyHandler,
		referenceHandler,
		adminHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := repos.Close(); err != nil {
		log.Error("Failed to close data store", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// checkHealth проверяет хранилище и Redis параллельно
func checkHealth(ctx context.Context, repos *app.Repositories, redisClient *cache.Redis) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := repos.Health(gctx); err != nil {
			return fmt.Errorf("data store: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := redisClient.Health(gctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})
	return g.Wait()
}
