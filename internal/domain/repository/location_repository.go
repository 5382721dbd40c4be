package repository

import (
	"context"

	"github.com/horus-listing/internal/domain"
)

// CityRepository - таблица cities
type CityRepository interface {
	// List возвращает все города по имени (по возрастанию)
	List(ctx context.Context) ([]domain.City, error)

	GetByID(ctx context.Context, id string) (*domain.City, error)

	// GetByName возвращает город или errors.ErrCityNotFound
	GetByName(ctx context.Context, name string) (*domain.City, error)

	Create(ctx context.Context, name string, nameEn *string) (*domain.City, error)

	Update(ctx context.Context, id, name string, nameEn *string) (*domain.City, error)

	// Delete удаляет город, районы удаляются каскадно
	Delete(ctx context.Context, id string) error
}

// AreaRepository - таблица areas
type AreaRepository interface {
	// ListByCity возвращает районы города по имени (по возрастанию)
	ListByCity(ctx context.Context, cityID string) ([]domain.Area, error)

	// GetByName возвращает район города или errors.ErrAreaNotFound
	GetByName(ctx context.Context, cityID, name string) (*domain.Area, error)

	Create(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error)

	Update(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error)

	Delete(ctx context.Context, id string) error
}
