// Package app собирает репозитории выбранного хранилища для cmd/api и cmd/horusctl.
package app

import (
	"context"
	"fmt"

	"github.com/horus-listing/internal/config"
	"github.com/horus-listing/internal/domain/repository"
	supabaseclient "github.com/horus-listing/internal/infrastructure/supabase"
	"github.com/horus-listing/internal/repository/postgres"
	"github.com/horus-listing/internal/repository/supabase"
	"go.uber.org/zap"
)

// Repositories - репозитории данных поверх DATA_BACKEND
type Repositories struct {
	Properties repository.PropertyRepository
	Cities     repository.CityRepository
	Areas      repository.AreaRepository

	health func(ctx context.Context) error
	close  func() error
}

// NewRepositories подключается к хранилищу из cfg.Backend
func NewRepositories(cfg *config.Config, logger *zap.Logger) (*Repositories, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Properties: postgres.NewPropertyRepository(db),
			Cities:     postgres.NewCityRepository(db),
			Areas:      postgres.NewAreaRepository(db),
			health:     db.Health,
			close:      db.Close,
		}, nil

	case config.BackendSupabase:
		client := supabaseclient.NewClient(&cfg.Supabase, logger)
		logger.Info("Supabase REST client initialized", zap.String("url", cfg.Supabase.URL))
		return &Repositories{
			Properties: supabase.NewPropertyRepository(client, logger),
			Cities:     supabase.NewCityRepository(client),
			Areas:      supabase.NewAreaRepository(client),
			health:     client.Health,
			close:      func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.Backend)
	}
}

// Health проверяет доступность хранилища
func (r *Repositories) Health(ctx context.Context) error {
	return r.health(ctx)
}

// Close закрывает соединения хранилища
func (r *Repositories) Close() error {
	return r.close()
}
