package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix    = "horus:"
	lookupPrefix = keyPrefix + "property:code:"
	statsKey     = keyPrefix + "stats:properties"
)

type cacheRepository struct {
	client redis.Cmdable
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// NewCacheRepositoryWithClient - для тестов и нестандартных клиентов (cluster, ring)
func NewCacheRepositoryWithClient(client redis.Cmdable, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.Strings("keys", keys))
	return nil
}

// GetLookup получает проекцию объявления из кеша
func (r *cacheRepository) GetLookup(ctx context.Context, code string) (*domain.PropertyLookup, error) {
	data, err := r.Get(ctx, lookupPrefix+code)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var lookup domain.PropertyLookup
	if err := json.Unmarshal(data, &lookup); err != nil {
		r.logger.Error("Failed to unmarshal lookup from cache", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("unmarshal lookup: %w", err)
	}

	return &lookup, nil
}

func (r *cacheRepository) SetLookup(ctx context.Context, lookup *domain.PropertyLookup, ttl time.Duration) error {
	data, err := json.Marshal(lookup)
	if err != nil {
		return fmt.Errorf("marshal lookup: %w", err)
	}
	return r.Set(ctx, lookupPrefix+lookup.Code, data, ttl)
}

func (r *cacheRepository) DeleteLookup(ctx context.Context, code string) error {
	return r.Delete(ctx, lookupPrefix+code)
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.PropertyStats, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var stats domain.PropertyStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.PropertyStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, statsKey, data, ttl)
}

func (r *cacheRepository) DeleteStats(ctx context.Context) error {
	return r.Delete(ctx, statsKey)
}
