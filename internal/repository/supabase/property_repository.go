package supabase

import (
	"context"
	"net/url"
	"time"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/infrastructure/supabase"
	"github.com/horus-listing/internal/pkg/errors"
	"go.uber.org/zap"
)

// propertyPayload - изменяемые колонки; id и даты выставляет БД
type propertyPayload struct {
	PropertyCode  *string             `json:"property_code,omitempty"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	PropertyType  domain.PropertyType `json:"property_type"`
	ListingType   domain.ListingType  `json:"listing_type"`
	Price         float64             `json:"price"`
	Area          float64             `json:"area"`
	Bedrooms      int                 `json:"bedrooms"`
	Bathrooms     int                 `json:"bathrooms"`
	Floor         *int                `json:"floor"`
	City          string              `json:"city"`
	AreaName      string              `json:"area_name"`
	Address       string              `json:"address"`
	Latitude      *float64            `json:"latitude"`
	Longitude     *float64            `json:"longitude"`
	Images        []string            `json:"images"`
	Featured      bool                `json:"featured"`
	OwnerName     *string             `json:"owner_name"`
	OwnerPhone    *string             `json:"owner_phone"`
	OriginalPrice *float64            `json:"original_price"`
	AdminNotes    *string             `json:"admin_notes"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
}

func newPropertyPayload(p *domain.Property) propertyPayload {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return propertyPayload{
		Name:          p.Name,
		Description:   p.Description,
		PropertyType:  p.PropertyType,
		ListingType:   p.ListingType,
		Price:         p.Price,
		Area:          p.Area,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Floor:         p.Floor,
		City:          p.City,
		AreaName:      p.AreaName,
		Address:       p.Address,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Images:        images,
		Featured:      p.Featured,
		OwnerName:     p.OwnerName,
		OwnerPhone:    p.OwnerPhone,
		OriginalPrice: p.OriginalPrice,
		AdminNotes:    p.AdminNotes,
	}
}

type propertyRepository struct {
	client *supabase.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewPropertyRepository(client *supabase.Client, logger *zap.Logger) repository.PropertyRepository {
	return &propertyRepository{client: client, logger: logger, now: time.Now}
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	var rows []domain.Property
	err := r.client.Select(ctx, tableProperties, url.Values{
		"select": {"*"},
		"order":  {"featured.desc,created_at.desc"},
	}, &rows)
	if err != nil {
		return nil, mapError("list properties", err, nil)
	}
	return normalizeProperties(rows), nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return r.getOne(ctx, "id", id)
}

func (r *propertyRepository) GetByCode(ctx context.Context, code string) (*domain.Property, error) {
	return r.getOne(ctx, "property_code", code)
}

func (r *propertyRepository) getOne(ctx context.Context, column, value string) (*domain.Property, error) {
	var rows []domain.Property
	err := r.client.Select(ctx, tableProperties, url.Values{
		"select": {"*"},
		column:   {supabase.Eq(value)},
		"limit":  {"1"},
	}, &rows)
	if err != nil {
		return nil, mapError("get property", err, nil)
	}
	if len(rows) == 0 {
		return nil, errors.ErrPropertyNotFound
	}
	p := normalizeProperties(rows)[0]
	return &p, nil
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	payload := newPropertyPayload(p)
	if p.PropertyCode != "" {
		code := p.PropertyCode
		payload.PropertyCode = &code
	}

	var rows []domain.Property
	if err := r.client.Insert(ctx, tableProperties, payload, &rows); err != nil {
		return nil, mapError("create property", err, errors.ErrPropertyCodeConflict)
	}
	if len(rows) == 0 {
		return nil, errors.ErrDatabaseError
	}
	created := normalizeProperties(rows)[0]
	return &created, nil
}

// Update не передаёт property_code, код меняется только через SetCode
func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	payload := newPropertyPayload(p)
	now := r.now().UTC()
	payload.UpdatedAt = &now

	var rows []domain.Property
	if err := r.client.Update(ctx, tableProperties, byID(p.ID), payload, &rows); err != nil {
		return nil, mapError("update property", err, nil)
	}
	if len(rows) == 0 {
		return nil, errors.ErrPropertyNotFound
	}
	updated := normalizeProperties(rows)[0]
	return &updated, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	var rows []struct {
		ID string `json:"id"`
	}
	if err := r.client.Delete(ctx, tableProperties, byID(id), &rows); err != nil {
		return mapError("delete property", err, nil)
	}
	if len(rows) == 0 {
		return errors.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) NextCode(ctx context.Context) (string, error) {
	var code string
	if err := r.client.RPC(ctx, rpcNextPropertyCode, nil, &code); err != nil {
		r.logger.Error("Failed to generate property code", zap.Error(err))
		return "", mapError("generate property code", err, nil)
	}
	return code, nil
}

func (r *propertyRepository) ListCodeRefs(ctx context.Context) ([]domain.PropertyCodeRef, error) {
	var refs []domain.PropertyCodeRef
	err := r.client.Select(ctx, tableProperties, url.Values{
		"select": {"id,property_code,created_at"},
		"order":  {"created_at.asc"},
	}, &refs)
	if err != nil {
		return nil, mapError("list property codes", err, nil)
	}
	if refs == nil {
		refs = []domain.PropertyCodeRef{}
	}
	return refs, nil
}

func (r *propertyRepository) SetCode(ctx context.Context, id, code string) error {
	patch := map[string]interface{}{
		"property_code": code,
		"updated_at":    r.now().UTC(),
	}
	var rows []struct {
		ID string `json:"id"`
	}
	if err := r.client.Update(ctx, tableProperties, byID(id), patch, &rows); err != nil {
		return mapError("set property code", err, errors.ErrPropertyCodeConflict)
	}
	if len(rows) == 0 {
		return errors.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) ListPriceRefs(ctx context.Context) ([]domain.PriceRef, error) {
	var refs []domain.PriceRef
	err := r.client.Select(ctx, tableProperties, url.Values{"select": {"listing_type,price"}}, &refs)
	if err != nil {
		return nil, mapError("list property prices", err, nil)
	}
	if refs == nil {
		refs = []domain.PriceRef{}
	}
	return refs, nil
}

func normalizeProperties(rows []domain.Property) []domain.Property {
	if rows == nil {
		return []domain.Property{}
	}
	for i := range rows {
		if rows[i].Images == nil {
			rows[i].Images = []string{}
		}
	}
	return rows
}
