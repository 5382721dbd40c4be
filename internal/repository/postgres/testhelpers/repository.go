package testhelpers

import (
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewPropertyRepositoryForTest creates a property repository over the test database
func NewPropertyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PropertyRepository {
	return postgres.NewPropertyRepository(postgres.NewDBForTest(db, logger))
}

// NewCityRepositoryForTest creates a city repository over the test database
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CityRepository {
	return postgres.NewCityRepository(postgres.NewDBForTest(db, logger))
}

// NewAreaRepositoryForTest creates an area repository over the test database
func NewAreaRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AreaRepository {
	return postgres.NewAreaRepository(postgres.NewDBForTest(db, logger))
}
