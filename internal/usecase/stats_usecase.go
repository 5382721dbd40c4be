package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"go.uber.org/zap"
)

// DefaultStatsTTL - срок жизни статистики в кеше
const DefaultStatsTTL = time.Hour

// StatsUseCase обрабатывает бизнес-логику для статистики админки
type StatsUseCase struct {
	propertyRepo repository.PropertyRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	ttl          time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	propertyRepo repository.PropertyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *StatsUseCase {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsUseCase{
		propertyRepo: propertyRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		ttl:          ttl,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.PropertyStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	return uc.compute(ctx)
}

// RefreshStatistics принудительно пересчитывает статистику
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.PropertyStats, error) {
	uc.logger.Info("Refreshing statistics")
	return uc.compute(ctx)
}

func (uc *StatsUseCase) compute(ctx context.Context) (*domain.PropertyStats, error) {
	refs, err := uc.propertyRepo.ListPriceRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	stats := domain.ComputeStats(refs)

	// Данные уже посчитаны, ошибка кеша не возвращается
	if err := uc.cacheRepo.SetStats(ctx, &stats, uc.ttl); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	} else {
		uc.logger.Debug("Statistics cached successfully")
	}

	return &stats, nil
}
