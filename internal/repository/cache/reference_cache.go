package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	apperrors "github.com/horus-listing/internal/pkg/errors"
	"go.uber.org/zap"
)

// DefaultCitiesTTL - срок жизни списка городов в кеше
const DefaultCitiesTTL = 5 * time.Minute

// ReferenceCache - кеш справочников городов и районов поверх хранилища.
// Список городов живёт ttl с момента загрузки, районы кешируются по городу
// без срока до явной инвалидации. Ошибки чтения не пробрасываются:
// вызывающий получает пустой список, ошибка пишется в лог.
type ReferenceCache struct {
	cities repository.CityRepository
	areas  repository.AreaRepository
	logger *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu              sync.Mutex
	citiesCache     []domain.City
	citiesFetchedAt time.Time
	areasCache      map[string][]domain.Area

	// поколения растут при инвалидации, чтобы загрузка, начатая до
	// мутации, не записала в кеш устаревшие данные
	citiesGen uint64
	areasGen  uint64
}

// NewReferenceCache - создание кеша. now == nil означает time.Now,
// ttl <= 0 означает DefaultCitiesTTL.
func NewReferenceCache(
	cities repository.CityRepository,
	areas repository.AreaRepository,
	logger *zap.Logger,
	ttl time.Duration,
	now func() time.Time,
) *ReferenceCache {
	if ttl <= 0 {
		ttl = DefaultCitiesTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ReferenceCache{
		cities:     cities,
		areas:      areas,
		logger:     logger,
		ttl:        ttl,
		now:        now,
		areasCache: make(map[string][]domain.Area),
	}
}

// GetCities возвращает все города, отсортированные по имени
func (c *ReferenceCache) GetCities(ctx context.Context) []domain.City {
	now := c.now()

	c.mu.Lock()
	if c.citiesCache != nil && now.Sub(c.citiesFetchedAt) < c.ttl {
		cached := c.citiesCache
		c.mu.Unlock()
		c.logger.Debug("Cities served from cache", zap.Int("count", len(cached)))
		return cloneCities(cached)
	}
	gen := c.citiesGen
	c.mu.Unlock()

	cities, err := c.cities.List(ctx)
	if err != nil {
		c.logger.Error("Error fetching cities", zap.Error(err))
		return []domain.City{}
	}
	if cities == nil {
		cities = []domain.City{}
	}

	c.mu.Lock()
	if gen == c.citiesGen {
		c.citiesCache = cities
		c.citiesFetchedAt = now
	}
	c.mu.Unlock()

	return cloneCities(cities)
}

// GetAreasByCity возвращает районы города, отсортированные по имени
func (c *ReferenceCache) GetAreasByCity(ctx context.Context, cityID string) []domain.Area {
	c.mu.Lock()
	if cached, ok := c.areasCache[cityID]; ok {
		c.mu.Unlock()
		c.logger.Debug("Areas served from cache", zap.String("city_id", cityID))
		return cloneAreas(cached)
	}
	gen := c.areasGen
	c.mu.Unlock()

	areas, err := c.areas.ListByCity(ctx, cityID)
	if err != nil {
		c.logger.Error("Error fetching areas", zap.String("city_id", cityID), zap.Error(err))
		return []domain.Area{}
	}
	if areas == nil {
		areas = []domain.Area{}
	}

	c.mu.Lock()
	if gen == c.areasGen {
		c.areasCache[cityID] = areas
	}
	c.mu.Unlock()

	return cloneAreas(areas)
}

// GetAreasByCityName - районы по имени города. Имя ищется в кешированном
// списке городов, в хранилище только если его там нет.
func (c *ReferenceCache) GetAreasByCityName(ctx context.Context, cityName string) []domain.Area {
	for _, city := range c.GetCities(ctx) {
		if city.Name == cityName {
			return c.GetAreasByCity(ctx, city.ID)
		}
	}

	city, err := c.cities.GetByName(ctx, cityName)
	if err != nil || city == nil {
		if err != nil {
			c.logger.Debug("City lookup by name failed", zap.String("city", cityName), zap.Error(err))
		}
		return []domain.Area{}
	}
	return c.GetAreasByCity(ctx, city.ID)
}

// GetCityByName возвращает город или nil
func (c *ReferenceCache) GetCityByName(ctx context.Context, name string) *domain.City {
	city, err := c.cities.GetByName(ctx, name)
	if errors.Is(err, apperrors.ErrCityNotFound) {
		return nil
	}
	if err != nil {
		c.logger.Error("Error fetching city", zap.String("city", name), zap.Error(err))
		return nil
	}
	return city
}

// GetAreaByName возвращает район по имени района и имени города или nil
func (c *ReferenceCache) GetAreaByName(ctx context.Context, areaName, cityName string) *domain.Area {
	city := c.GetCityByName(ctx, cityName)
	if city == nil {
		return nil
	}

	area, err := c.areas.GetByName(ctx, city.ID, areaName)
	if errors.Is(err, apperrors.ErrAreaNotFound) {
		return nil
	}
	if err != nil {
		c.logger.Error("Error fetching area",
			zap.String("city", cityName),
			zap.String("area", areaName),
			zap.Error(err))
		return nil
	}
	return area
}

// AddCity создаёт город и сбрасывает список городов
func (c *ReferenceCache) AddCity(ctx context.Context, name string, nameEn *string) (*domain.City, error) {
	city, err := c.cities.Create(ctx, name, nameEn)
	if err != nil {
		c.logger.Error("Error adding city", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	c.invalidateCitiesLocked()
	c.mu.Unlock()

	return city, nil
}

// UpdateCity обновляет город и сбрасывает города и все районы
func (c *ReferenceCache) UpdateCity(ctx context.Context, id, name string, nameEn *string) (*domain.City, error) {
	city, err := c.cities.Update(ctx, id, name, nameEn)
	if err != nil {
		c.logger.Error("Error updating city", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	c.invalidateCitiesLocked()
	c.invalidateAreasLocked()
	c.mu.Unlock()

	return city, nil
}

// DeleteCity удаляет город (районы удаляются каскадно) и сбрасывает весь кеш
func (c *ReferenceCache) DeleteCity(ctx context.Context, id string) error {
	if err := c.cities.Delete(ctx, id); err != nil {
		c.logger.Error("Error deleting city", zap.String("id", id), zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.invalidateCitiesLocked()
	c.invalidateAreasLocked()
	c.mu.Unlock()

	return nil
}

// AddArea создаёт район и сбрасывает районы только этого города
func (c *ReferenceCache) AddArea(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error) {
	area, err := c.areas.Create(ctx, cityID, name, nameEn)
	if err != nil {
		c.logger.Error("Error adding area",
			zap.String("city_id", cityID),
			zap.String("name", name),
			zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	delete(c.areasCache, cityID)
	c.areasGen++
	c.mu.Unlock()

	return area, nil
}

// UpdateArea обновляет район и сбрасывает все районы
func (c *ReferenceCache) UpdateArea(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error) {
	area, err := c.areas.Update(ctx, id, name, nameEn)
	if err != nil {
		c.logger.Error("Error updating area", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	c.invalidateAreasLocked()
	c.mu.Unlock()

	return area, nil
}

// DeleteArea удаляет район и сбрасывает все районы
func (c *ReferenceCache) DeleteArea(ctx context.Context, id string) error {
	if err := c.areas.Delete(ctx, id); err != nil {
		c.logger.Error("Error deleting area", zap.String("id", id), zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.invalidateAreasLocked()
	c.mu.Unlock()

	return nil
}

// Clear полностью очищает кеш
func (c *ReferenceCache) Clear() {
	c.mu.Lock()
	c.invalidateCitiesLocked()
	c.invalidateAreasLocked()
	c.mu.Unlock()

	c.logger.Info("Reference cache cleared")
}

func (c *ReferenceCache) invalidateCitiesLocked() {
	c.citiesCache = nil
	c.citiesFetchedAt = time.Time{}
	c.citiesGen++
}

func (c *ReferenceCache) invalidateAreasLocked() {
	c.areasCache = make(map[string][]domain.Area)
	c.areasGen++
}

func cloneCities(in []domain.City) []domain.City {
	out := make([]domain.City, len(in))
	copy(out, in)
	return out
}

func cloneAreas(in []domain.Area) []domain.Area {
	out := make([]domain.Area, len(in))
	copy(out, in)
	return out
}
