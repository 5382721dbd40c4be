package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	citySelect = `id, name, name_en, created_at, updated_at`
	areaSelect = `id, city_id, name, name_en, created_at, updated_at`
)

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{db: db.DB, logger: db.logger}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := r.db.SelectContext(ctx, &cities, `SELECT `+citySelect+` FROM cities ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("list cities: %w: %w", errors.ErrDatabaseError, err)
	}
	if cities == nil {
		cities = []domain.City{}
	}
	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	return r.getOne(ctx, `SELECT `+citySelect+` FROM cities WHERE id = $1`, id)
}

func (r *cityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	return r.getOne(ctx, `SELECT `+citySelect+` FROM cities WHERE name = $1`, name)
}

func (r *cityRepository) getOne(ctx context.Context, query, arg string) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city, query, arg)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get city: %w: %w", errors.ErrDatabaseError, err)
	}
	return &city, nil
}

func (r *cityRepository) Create(ctx context.Context, name string, nameEn *string) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city,
		`INSERT INTO cities (name, name_en) VALUES ($1, $2) RETURNING `+citySelect, name, nameEn)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrNameConflict
		}
		return nil, fmt.Errorf("create city: %w: %w", errors.ErrDatabaseError, err)
	}
	return &city, nil
}

func (r *cityRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city,
		`UPDATE cities SET name = $2, name_en = $3, updated_at = now() WHERE id = $1 RETURNING `+citySelect,
		id, name, nameEn)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrNameConflict
		}
		return nil, fmt.Errorf("update city: %w: %w", errors.ErrDatabaseError, err)
	}
	return &city, nil
}

// Delete удаляет город, районы удаляются каскадом по внешнему ключу
func (r *cityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete city: %w: %w", errors.ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrCityNotFound
	}
	r.logger.Debug("City deleted", zap.String("id", id))
	return nil
}

type areaRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAreaRepository(db *DB) repository.AreaRepository {
	return &areaRepository{db: db.DB, logger: db.logger}
}

func (r *areaRepository) ListByCity(ctx context.Context, cityID string) ([]domain.Area, error) {
	var areas []domain.Area
	err := r.db.SelectContext(ctx, &areas,
		`SELECT `+areaSelect+` FROM areas WHERE city_id = $1 ORDER BY name ASC`, cityID)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w: %w", errors.ErrDatabaseError, err)
	}
	if areas == nil {
		areas = []domain.Area{}
	}
	return areas, nil
}

func (r *areaRepository) GetByName(ctx context.Context, cityID, name string) (*domain.Area, error) {
	var area domain.Area
	err := r.db.GetContext(ctx, &area,
		`SELECT `+areaSelect+` FROM areas WHERE city_id = $1 AND name = $2`, cityID, name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get area: %w: %w", errors.ErrDatabaseError, err)
	}
	return &area, nil
}

func (r *areaRepository) Create(ctx context.Context, cityID, name string, nameEn *string) (*domain.Area, error) {
	var area domain.Area
	err := r.db.GetContext(ctx, &area,
		`INSERT INTO areas (city_id, name, name_en) VALUES ($1, $2, $3) RETURNING `+areaSelect,
		cityID, name, nameEn)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrNameConflict
		}
		return nil, fmt.Errorf("create area: %w: %w", errors.ErrDatabaseError, err)
	}
	return &area, nil
}

func (r *areaRepository) Update(ctx context.Context, id, name string, nameEn *string) (*domain.Area, error) {
	var area domain.Area
	err := r.db.GetContext(ctx, &area,
		`UPDATE areas SET name = $2, name_en = $3, updated_at = now() WHERE id = $1 RETURNING `+areaSelect,
		id, name, nameEn)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrAreaNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrNameConflict
		}
		return nil, fmt.Errorf("update area: %w: %w", errors.ErrDatabaseError, err)
	}
	return &area, nil
}

func (r *areaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete area: %w: %w", errors.ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrAreaNotFound
	}
	return nil
}
