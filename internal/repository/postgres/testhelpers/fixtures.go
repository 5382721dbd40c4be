package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PropertyFixture - минимальная строка для вставки в properties
type PropertyFixture struct {
	Code        *string
	Name        string
	ListingType string
	Price       float64
	Featured    bool
	City        string
	CreatedAt   time.Time
}

// InsertProperty вставляет объявление напрямую, минуя репозиторий, и возвращает id
func InsertProperty(ctx context.Context, db *sqlx.DB, f PropertyFixture) (string, error) {
	var id string
	err := db.GetContext(ctx, &id, `
		INSERT INTO properties (property_code, name, property_type, listing_type, price, area,
			bedrooms, bathrooms, city, area_name, images, featured, created_at, updated_at)
		VALUES ($1, $2, 'شقة', $3, $4, 120, 3, 2, $5, 'المعادي', $6, $7, $8, $8)
		RETURNING id`,
		f.Code, f.Name, f.ListingType, f.Price, f.City,
		pq.StringArray{"https://img.example/1.jpg"}, f.Featured, f.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert property %s: %w", f.Name, err)
	}
	return id, nil
}
