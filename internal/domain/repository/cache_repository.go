package repository

import (
	"context"
	"time"

	"github.com/horus-listing/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// GetLookup получает проекцию объявления по коду
	GetLookup(ctx context.Context, code string) (*domain.PropertyLookup, error)

	// SetLookup сохраняет проекцию объявления
	SetLookup(ctx context.Context, lookup *domain.PropertyLookup, ttl time.Duration) error

	// DeleteLookup удаляет проекцию по коду
	DeleteLookup(ctx context.Context, code string) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.PropertyStats, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.PropertyStats, ttl time.Duration) error

	// DeleteStats сбрасывает статистику
	DeleteStats(ctx context.Context) error
}
