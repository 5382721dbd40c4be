// Package mocks - testify моки репозиториев для тестов use case и кешей.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/horus-listing/internal/domain"
)

// PropertyRepository is a mock of repository.PropertyRepository
type PropertyRepository struct {
	mock.Mock
}

func (m *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) GetByCode(ctx context.Context, code string) (*domain.Property, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PropertyRepository) NextCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *PropertyRepository) ListCodeRefs(ctx context.Context) ([]domain.PropertyCodeRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyCodeRef), args.Error(1)
}

func (m *PropertyRepository) SetCode(ctx context.Context, id, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

func (m *PropertyRepository) ListPriceRefs(ctx context.Context) ([]domain.PriceRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRef), args.Error(1)
}

// CityRepository is a mock of repository.CityRepository
type CityRepository struct {
	mock.Mock
}

func (m *CityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *CityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *CityRepository) Create(ctx context.Context, name string, nameEn *string) (*domain.City, error) {
	args := m.Called(ctx, name, nameEn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *CityRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.City, error) {
	args := m.Called(ctx, id, name, nameEn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *CityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AreaRepository is a mock of repository.AreaRepository
type AreaRepository struct {
	mock.Mock
}

func (m *AreaRepository) ListByCity(ctx context.Context, cityID string) ([]domain.Area, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Area), args.Error(1)
}

func (m *AreaRepository) GetByName(ctx context.Context, cityID, name string) (*domain.Area, error) {
	args := m.Called(ctx, cityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *AreaRepository) Create(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error) {
	args := m.Called(ctx, cityID, name, nameEn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *AreaRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error) {
	args := m.Called(ctx, id, name, nameEn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *AreaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CacheRepository is a mock of repository.CacheRepository
type CacheRepository struct {
	mock.Mock
}

func (m *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *CacheRepository) GetLookup(ctx context.Context, code string) (*domain.PropertyLookup, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyLookup), args.Error(1)
}

func (m *CacheRepository) SetLookup(ctx context.Context, lookup *domain.PropertyLookup, ttl time.Duration) error {
	args := m.Called(ctx, lookup, ttl)
	return args.Error(0)
}

func (m *CacheRepository) DeleteLookup(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *CacheRepository) GetStats(ctx context.Context) (*domain.PropertyStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyStats), args.Error(1)
}

func (m *CacheRepository) SetStats(ctx context.Context, stats *domain.PropertyStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *CacheRepository) DeleteStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
