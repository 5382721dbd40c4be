package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/validator"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReferenceCache - кеш справочников, реализован cache.ReferenceCache
type ReferenceCache interface {
	GetCities(ctx context.Context) []domain.City
	GetAreasByCity(ctx context.Context, cityID string) []domain.Area
	GetAreasByCityName(ctx context.Context, cityName string) []domain.Area
	GetCityByName(ctx context.Context, name string) *domain.City
	GetAreaByName(ctx context.Context, areaName, cityName string) *domain.Area
	AddCity(ctx context.Context, name string, nameEn *string) (*domain.City, error)
	UpdateCity(ctx context.Context, id, name string, nameEn *string) (*domain.City, error)
	DeleteCity(ctx context.Context, id string) error
	AddArea(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error)
	UpdateArea(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error)
	DeleteArea(ctx context.Context, id string) error
	Clear()
}

// ReferenceUseCase - города и районы для фильтров и админки
type ReferenceUseCase struct {
	cache  ReferenceCache
	logger *zap.Logger
}

func NewReferenceUseCase(cache ReferenceCache, logger *zap.Logger) *ReferenceUseCase {
	return &ReferenceUseCase{cache: cache, logger: logger}
}

func (uc *ReferenceUseCase) Cities(ctx context.Context) []domain.City {
	return uc.cache.GetCities(ctx)
}

func (uc *ReferenceUseCase) AreasByCity(ctx context.Context, cityID string) ([]domain.Area, error) {
	if _, err := uuid.Parse(cityID); err != nil {
		return nil, errors.ErrInvalidID
	}
	return uc.cache.GetAreasByCity(ctx, cityID), nil
}

// AreasByCityName - районы для формы поиска, где город выбран по имени
func (uc *ReferenceUseCase) AreasByCityName(ctx context.Context, cityName string) []domain.Area {
	if cityName == "" {
		return []domain.Area{}
	}
	return uc.cache.GetAreasByCityName(ctx, cityName)
}

func (uc *ReferenceUseCase) CreateCity(ctx context.Context, req dto.CityRequest) (*domain.City, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return uc.cache.AddCity(ctx, strings.TrimSpace(req.Name), req.NameEn)
}

func (uc *ReferenceUseCase) UpdateCity(ctx context.Context, id string, req dto.CityRequest) (*domain.City, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return uc.cache.UpdateCity(ctx, id, strings.TrimSpace(req.Name), req.NameEn)
}

func (uc *ReferenceUseCase) DeleteCity(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrInvalidID
	}
	return uc.cache.DeleteCity(ctx, id)
}

func (uc *ReferenceUseCase) CreateArea(ctx context.Context, cityID string, req dto.AreaRequest) (*domain.Area, error) {
	if _, err := uuid.Parse(cityID); err != nil {
		return nil, errors.ErrInvalidID
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return uc.cache.AddArea(ctx, cityID, strings.TrimSpace(req.Name), req.NameEn)
}

func (uc *ReferenceUseCase) UpdateArea(ctx context.Context, id string, req dto.AreaRequest) (*domain.Area, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return uc.cache.UpdateArea(ctx, id, strings.TrimSpace(req.Name), req.NameEn)
}

func (uc *ReferenceUseCase) DeleteArea(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrInvalidID
	}
	return uc.cache.DeleteArea(ctx, id)
}

// ClearCache - ручной сброс кеша справочников из админки
func (uc *ReferenceUseCase) ClearCache() {
	uc.cache.Clear()
}
