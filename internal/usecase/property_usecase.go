package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/validator"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
)

// DefaultLookupTTL - срок жизни проекции /api/property в Redis
const DefaultLookupTTL = 10 * time.Minute

// PropertyUseCase - каталог объявлений для сайта и админки
type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	lookupTTL    time.Duration
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	lookupTTL time.Duration,
) *PropertyUseCase {
	if lookupTTL <= 0 {
		lookupTTL = DefaultLookupTTL
	}
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		lookupTTL:    lookupTTL,
	}
}

// ListAll - вся коллекция в публичной проекции. Ошибка хранилища
// превращается в пустой список, страница показывает "нет объявлений".
func (uc *PropertyUseCase) ListAll(ctx context.Context) []domain.PublicProperty {
	return domain.ToPublic(uc.loadAll(ctx))
}

func (uc *PropertyUseCase) loadAll(ctx context.Context) []domain.Property {
	properties, err := uc.propertyRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Error fetching properties", zap.Error(err))
		return []domain.Property{}
	}
	return properties
}

// Sections - блоки главной страницы
func (uc *PropertyUseCase) Sections(ctx context.Context) *dto.SectionsResponse {
	sections := domain.PartitionListings(uc.loadAll(ctx))
	return &dto.SectionsResponse{
		Featured: domain.ToPublic(sections.Featured),
		Latest:   domain.ToPublic(sections.Latest),
		All:      domain.ToPublic(sections.All),
	}
}

// Search фильтрует каталог. Ошибка только при неразборчивом фильтре.
func (uc *PropertyUseCase) Search(ctx context.Context, state domain.FilterState) (*dto.SearchResponse, error) {
	filter, err := criteria(state)
	if err != nil {
		return nil, err
	}

	all := uc.loadAll(ctx)
	matched := domain.ApplyFilters(all, filter)

	return &dto.SearchResponse{
		Items:   domain.ToPublic(matched),
		Total:   len(all),
		Matched: len(matched),
	}, nil
}

// FilterOptions - значения выпадающих списков формы поиска
func (uc *PropertyUseCase) FilterOptions() *dto.FilterOptionsResponse {
	bedrooms := make([]int, 0, domain.BedroomsOrMore)
	for i := 1; i <= domain.BedroomsOrMore; i++ {
		bedrooms = append(bedrooms, i)
	}
	return &dto.FilterOptionsResponse{
		PropertyTypes: domain.PropertyTypes,
		ListingTypes:  domain.ListingTypes,
		Bedrooms:      bedrooms,
	}
}

// GetByID - карточка объявления
func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*domain.PublicProperty, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}

	p, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	public := p.Public()
	return &public, nil
}

// Lookup - сокращённая проекция по коду, кешируется в Redis
func (uc *PropertyUseCase) Lookup(ctx context.Context, code string) (*domain.PropertyLookup, error) {
	if code == "" {
		return nil, errors.ErrPropertyCodeRequired
	}

	cached, err := uc.cacheRepo.GetLookup(ctx, code)
	if err != nil {
		uc.logger.Warn("Failed to get lookup from cache", zap.String("code", code), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	p, err := uc.propertyRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	lookup := p.Lookup()
	if err := uc.cacheRepo.SetLookup(ctx, &lookup, uc.lookupTTL); err != nil {
		uc.logger.Warn("Failed to cache lookup", zap.String("code", code), zap.Error(err))
	}

	return &lookup, nil
}

// AdminList - полные записи с приватными полями. В отличие от публичного
// каталога ошибка хранилища возвращается.
func (uc *PropertyUseCase) AdminList(ctx context.Context, state domain.FilterState) (*dto.AdminSearchResponse, error) {
	filter, err := criteria(state)
	if err != nil {
		return nil, err
	}

	all, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := domain.ApplyFilters(all, filter)

	return &dto.AdminSearchResponse{
		Items:   matched,
		Total:   len(all),
		Matched: len(matched),
	}, nil
}

// AdminGet - полная запись по ID
func (uc *PropertyUseCase) AdminGet(ctx context.Context, id string) (*domain.Property, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}
	return uc.propertyRepo.GetByID(ctx, id)
}

// NextCode - код, который получит следующее объявление без явного кода
func (uc *PropertyUseCase) NextCode(ctx context.Context) (string, error) {
	return uc.propertyRepo.NextCode(ctx)
}

// Create сохраняет объявление; пустой код генерируется процедурой БД
func (uc *PropertyUseCase) Create(ctx context.Context, req dto.PropertyRequest) (*domain.Property, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	p := req.ToDomain()
	if p.PropertyCode == "" {
		code, err := uc.propertyRepo.NextCode(ctx)
		if err != nil {
			return nil, err
		}
		p.PropertyCode = code
	}

	created, err := uc.propertyRepo.Create(ctx, p)
	if err != nil {
		if !stderrors.Is(err, errors.ErrPropertyCodeConflict) {
			uc.logger.Error("Error adding property", zap.String("code", p.PropertyCode), zap.Error(err))
		}
		return nil, err
	}

	uc.invalidate(ctx, created.PropertyCode)
	uc.logger.Info("Property created",
		zap.String("id", created.ID),
		zap.String("code", created.PropertyCode))

	return created, nil
}

// Update перезаписывает объявление. Код можно не передавать или передать
// текущий; любой другой код отклоняется.
func (uc *PropertyUseCase) Update(ctx context.Context, id string, req dto.PropertyRequest) (*domain.Property, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	current, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := req.ToDomain()
	if p.PropertyCode != "" && p.PropertyCode != current.PropertyCode {
		return nil, errors.ErrPropertyCodeImmutable.WithDetails(map[string]interface{}{
			"current": current.PropertyCode,
		})
	}
	p.ID = current.ID
	p.PropertyCode = current.PropertyCode
	p.CreatedAt = current.CreatedAt

	updated, err := uc.propertyRepo.Update(ctx, p)
	if err != nil {
		uc.logger.Error("Error updating property", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx, current.PropertyCode)
	return updated, nil
}

// Delete удаляет объявление
func (uc *PropertyUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrInvalidID
	}

	current, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.propertyRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Error deleting property", zap.String("id", id), zap.Error(err))
		return err
	}

	uc.invalidate(ctx, current.PropertyCode)
	uc.logger.Info("Property deleted", zap.String("id", id), zap.String("code", current.PropertyCode))
	return nil
}

// invalidate сбрасывает проекцию по коду и статистику. Ошибки Redis не
// отменяют уже выполненную запись в БД.
func (uc *PropertyUseCase) invalidate(ctx context.Context, code string) {
	if code != "" {
		if err := uc.cacheRepo.DeleteLookup(ctx, code); err != nil {
			uc.logger.Warn("Failed to drop cached lookup", zap.String("code", code), zap.Error(err))
		}
	}
	if err := uc.cacheRepo.DeleteStats(ctx); err != nil {
		uc.logger.Warn("Failed to drop cached stats", zap.Error(err))
	}
}

func criteria(state domain.FilterState) (domain.PropertyFilter, error) {
	filter, err := state.Criteria()
	if err != nil {
		var fe *domain.FilterValueError
		if stderrors.As(err, &fe) {
			return domain.PropertyFilter{}, errors.ErrInvalidFilter.WithDetails(map[string]interface{}{
				"key":   fe.Key,
				"value": fe.Value,
			})
		}
		return domain.PropertyFilter{}, errors.ErrInvalidFilter
	}
	return filter, nil
}
