package supabase

import (
	"context"
	"net/url"
	"time"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/infrastructure/supabase"
	"github.com/horus-listing/internal/pkg/errors"
)

type namePayload struct {
	CityID    string     `json:"city_id,omitempty"`
	Name      string     `json:"name"`
	NameEn    *string    `json:"name_en"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type cityRepository struct {
	client *supabase.Client
	now    func() time.Time
}

func NewCityRepository(client *supabase.Client) repository.CityRepository {
	return &cityRepository{client: client, now: time.Now}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	cities := []domain.City{}
	err := r.client.Select(ctx, tableCities, url.Values{"select": {"*"}, "order": {"name.asc"}}, &cities)
	if err != nil {
		return nil, mapError("list cities", err, nil)
	}
	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	return r.getOne(ctx, "id", id)
}

func (r *cityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	return r.getOne(ctx, "name", name)
}

func (r *cityRepository) getOne(ctx context.Context, column, value string) (*domain.City, error) {
	var rows []domain.City
	err := r.client.Select(ctx, tableCities, url.Values{
		"select": {"*"},
		column:   {supabase.Eq(value)},
		"limit":  {"1"},
	}, &rows)
	if err != nil {
		return nil, mapError("get city", err, nil)
	}
	if len(rows) == 0 {
		return nil, errors.ErrCityNotFound
	}
	return &rows[0], nil
}

func (r *cityRepository) Create(ctx context.Context, name string, nameEn *string) (*domain.City, error) {
	var rows []domain.City
	if err := r.client.Insert(ctx, tableCities, namePayload{Name: name, NameEn: nameEn}, &rows); err != nil {
		return nil, mapError("create city", err, errors.ErrNameConflict)
	}
	if len(rows) == 0 {
		return nil, errors.ErrDatabaseError
	}
	return &rows[0], nil
}

func (r *cityRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.City, error) {
	now := r.now().UTC()
	var rows []domain.City
	err := r.client.Update(ctx, tableCities, byID(id), namePayload{Name: name, NameEn: nameEn, UpdatedAt: &now}, &rows)
	if err != nil {
		return nil, mapError("update city", err, errors.ErrNameConflict)
	}
	if len(rows) == 0 {
		return nil, errors.ErrCityNotFound
	}
	return &rows[0], nil
}

func (r *cityRepository) Delete(ctx context.Context, id string) error {
	var rows []domain.City
	if err := r.client.Delete(ctx, tableCities, byID(id), &rows); err != nil {
		return mapError("delete city", err, nil)
	}
	if len(rows) == 0 {
		return errors.ErrCityNotFound
	}
	return nil
}

type areaRepository struct {
	client *supabase.Client
	now    func() time.Time
}

func NewAreaRepository(client *supabase.Client) repository.AreaRepository {
	return &areaRepository{client: client, now: time.Now}
}

func (r *areaRepository) ListByCity(ctx context.Context, cityID string) ([]domain.Area, error) {
	areas := []domain.Area{}
	err := r.client.Select(ctx, tableAreas, url.Values{
		"select":  {"*"},
		"city_id": {supabase.Eq(cityID)},
		"order":   {"name.asc"},
	}, &areas)
	if err != nil {
		return nil, mapError("list areas", err, nil)
	}
	return areas, nil
}

func (r *areaRepository) GetByName(ctx context.Context, cityID, name string) (*domain.Area, error) {
	var rows []domain.Area
	err := r.client.Select(ctx, tableAreas, url.Values{
		"select":  {"*"},
		"city_id": {supabase.Eq(cityID)},
		"name":    {supabase.Eq(name)},
		"limit":   {"1"},
	}, &rows)
	if err != nil {
		return nil, mapError("get area", err, nil)
	}
	if len(rows) == 0 {
		return nil, errors.ErrAreaNotFound
	}
	return &rows[0], nil
}

func (r *areaRepository) Create(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error) {
	var rows []domain.Area
	err := r.client.Insert(ctx, tableAreas, namePayload{CityID: cityID, Name: name, NameEn: nameEn}, &rows)
	if err != nil {
		return nil, mapError("create area", err, errors.ErrNameConflict)
	}
	if len(rows) == 0 {
		return nil, errors.ErrDatabaseError
	}
	return &rows[0], nil
}

func (r *areaRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error) {
	now := r.now().UTC()
	var rows []domain.Area
	err := r.client.Update(ctx, tableAreas, byID(id), namePayload{Name: name, NameEn: nameEn, UpdatedAt: &now}, &rows)
	if err != nil {
		return nil, mapError("update area", err, errors.ErrNameConflict)
	}
	if len(rows) == 0 {
		return nil, errors.ErrAreaNotFound
	}
	return &rows[0], nil
}

func (r *areaRepository) Delete(ctx context.Context, id string) error {
	var rows []domain.Area
	if err := r.client.Delete(ctx, tableAreas, byID(id), &rows); err != nil {
		return mapError("delete area", err, nil)
	}
	if len(rows) == 0 {
		return errors.ErrAreaNotFound
	}
	return nil
}
