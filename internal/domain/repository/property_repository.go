package repository

import (
	"context"

	"github.com/horus-listing/internal/domain"
)

// PropertyRepository определяет доступ к таблице properties
type PropertyRepository interface {
	// List возвращает все объявления: сначала featured, затем новые
	List(ctx context.Context) ([]domain.Property, error)

	// GetByID возвращает объявление по ID или errors.ErrPropertyNotFound
	GetByID(ctx context.Context, id string) (*domain.Property, error)

	// GetByCode возвращает объявление по коду или errors.ErrPropertyNotFound
	GetByCode(ctx context.Context, code string) (*domain.Property, error)

	// Create сохраняет объявление и возвращает запись с ID и датами
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)

	// Update перезаписывает изменяемые поля объявления
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)

	// Delete удаляет объявление
	Delete(ctx context.Context, id string) error

	// NextCode вызывает процедуру generate_next_property_code
	NextCode(ctx context.Context) (string, error)

	// ListCodeRefs возвращает id/код/дату создания, старые первыми
	ListCodeRefs(ctx context.Context) ([]domain.PropertyCodeRef, error)

	// SetCode присваивает код объявлению
	SetCode(ctx context.Context, id, code string) error

	// ListPriceRefs возвращает тип сделки и цену всех объявлений
	ListPriceRefs(ctx context.Context) ([]domain.PriceRef, error)
}
