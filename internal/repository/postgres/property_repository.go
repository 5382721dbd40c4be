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
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// propertySelect - колонки объявления. NUMERIC приводится к float8,
// код может быть NULL до заполнения backfill-codes.
const propertySelect = `
	id, COALESCE(property_code, '') AS property_code, name, description,
	property_type, listing_type, price::float8 AS price, area::float8 AS area,
	bedrooms, bathrooms, floor, city, area_name, address, latitude, longitude,
	images, featured, owner_name, owner_phone,
	original_price::float8 AS original_price, admin_notes, created_at, updated_at
`

// propertyRow - строка таблицы properties; images хранится как text[]
type propertyRow struct {
	domain.Property
	ImageList pq.StringArray `db:"images"`
}

func newPropertyRow(p *domain.Property) propertyRow {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return propertyRow{Property: *p, ImageList: pq.StringArray(images)}
}

func (r propertyRow) toDomain() domain.Property {
	p := r.Property
	p.Images = []string(r.ImageList)
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

type propertyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPropertyRepository(db *DB) repository.PropertyRepository {
	return &propertyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// List - все объявления в порядке главной страницы
func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertySelect + ` FROM properties ORDER BY featured DESC, created_at DESC`

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("list properties: %w: %w", errors.ErrDatabaseError, err)
	}

	result := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return r.getOne(ctx, `SELECT `+propertySelect+` FROM properties WHERE id = $1`, id)
}

func (r *propertyRepository) GetByCode(ctx context.Context, code string) (*domain.Property, error) {
	return r.getOne(ctx, `SELECT `+propertySelect+` FROM properties WHERE property_code = $1`, code)
}

func (r *propertyRepository) getOne(ctx context.Context, query string, arg string) (*domain.Property, error) {
	var row propertyRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPropertyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get property", zap.String("key", arg), zap.Error(err))
		return nil, fmt.Errorf("get property: %w: %w", errors.ErrDatabaseError, err)
	}

	p := row.toDomain()
	return &p, nil
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	query := `
		INSERT INTO properties (
			property_code, name, description, property_type, listing_type,
			price, area, bedrooms, bathrooms, floor, city, area_name, address,
			latitude, longitude, images, featured,
			owner_name, owner_phone, original_price, admin_notes
		) VALUES (
			:property_code, :name, :description, :property_type, :listing_type,
			:price, :area, :bedrooms, :bathrooms, :floor, :city, :area_name, :address,
			:latitude, :longitude, :images, :featured,
			:owner_name, :owner_phone, :original_price, :admin_notes
		)
		RETURNING ` + propertySelect

	created, err := r.namedReturning(ctx, query, newPropertyRow(p))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrPropertyCodeConflict
		}
		r.logger.Error("Failed to create property", zap.String("code", p.PropertyCode), zap.Error(err))
		return nil, fmt.Errorf("create property: %w: %w", errors.ErrDatabaseError, err)
	}
	return created, nil
}

// Update меняет все поля кроме кода и даты создания
func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	query := `
		UPDATE properties SET
			name = :name, description = :description,
			property_type = :property_type, listing_type = :listing_type,
			price = :price, area = :area, bedrooms = :bedrooms, bathrooms = :bathrooms,
			floor = :floor, city = :city, area_name = :area_name, address = :address,
			latitude = :latitude, longitude = :longitude, images = :images,
			featured = :featured, owner_name = :owner_name, owner_phone = :owner_phone,
			original_price = :original_price, admin_notes = :admin_notes,
			updated_at = now()
		WHERE id = :id
		RETURNING ` + propertySelect

	updated, err := r.namedReturning(ctx, query, newPropertyRow(p))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPropertyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update property", zap.String("id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("update property: %w: %w", errors.ErrDatabaseError, err)
	}
	return updated, nil
}

func (r *propertyRepository) namedReturning(ctx context.Context, query string, row propertyRow) (*domain.Property, error) {
	bound, args, err := r.db.BindNamed(query, row)
	if err != nil {
		return nil, err
	}

	var out propertyRow
	if err := r.db.QueryRowxContext(ctx, bound, args...).StructScan(&out); err != nil {
		return nil, err
	}

	p := out.toDomain()
	return &p, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete property: %w: %w", errors.ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrPropertyNotFound
	}
	return nil
}

// NextCode - следующий код из generate_next_property_code()
func (r *propertyRepository) NextCode(ctx context.Context) (string, error) {
	var code string
	if err := r.db.GetContext(ctx, &code, `SELECT generate_next_property_code()`); err != nil {
		r.logger.Error("Failed to generate property code", zap.Error(err))
		return "", fmt.Errorf("generate property code: %w: %w", errors.ErrDatabaseError, err)
	}
	return code, nil
}

// ListCodeRefs - id и коды всех объявлений от старых к новым
func (r *propertyRepository) ListCodeRefs(ctx context.Context) ([]domain.PropertyCodeRef, error) {
	var refs []domain.PropertyCodeRef
	err := r.db.SelectContext(ctx, &refs,
		`SELECT id, property_code, created_at FROM properties ORDER BY created_at ASC`)
	if err != nil {
		r.logger.Error("Failed to list property codes", zap.Error(err))
		return nil, fmt.Errorf("list property codes: %w: %w", errors.ErrDatabaseError, err)
	}
	if refs == nil {
		refs = []domain.PropertyCodeRef{}
	}
	return refs, nil
}

func (r *propertyRepository) SetCode(ctx context.Context, id, code string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE properties SET property_code = $2, updated_at = now() WHERE id = $1`, id, code)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrPropertyCodeConflict
		}
		return fmt.Errorf("set property code: %w: %w", errors.ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) ListPriceRefs(ctx context.Context) ([]domain.PriceRef, error) {
	var refs []domain.PriceRef
	if err := r.db.SelectContext(ctx, &refs,
		`SELECT listing_type, price::float8 AS price FROM properties`); err != nil {
		r.logger.Error("Failed to list property prices", zap.Error(err))
		return nil, fmt.Errorf("list property prices: %w: %w", errors.ErrDatabaseError, err)
	}
	if refs == nil {
		refs = []domain.PriceRef{}
	}
	return refs, nil
}
