package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/repository/postgres/testhelpers"
)

type LocationRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	cities repository.CityRepository
	areas  repository.AreaRepository
	ctx    context.Context
}

func (s *LocationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations"))
	s.cities = testhelpers.NewCityRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.areas = testhelpers.NewAreaRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *LocationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *LocationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *LocationRepositoryTestSuite) TestCitiesSortedAndUnique() {
	en := "Giza"
	_, err := s.cities.Create(s.ctx, "الجيزة", &en)
	s.Require().NoError(err)
	_, err = s.cities.Create(s.ctx, "الإسكندرية", nil)
	s.Require().NoError(err)

	_, err = s.cities.Create(s.ctx, "الجيزة", nil)
	s.ErrorIs(err, errors.ErrNameConflict)

	list, err := s.cities.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("الإسكندرية", list[0].Name)
	s.Equal("Giza", *list[1].NameEn)
}

func (s *LocationRepositoryTestSuite) TestAreasScopedToCity() {
	cairo, err := s.cities.Create(s.ctx, "القاهرة", nil)
	s.Require().NoError(err)
	giza, err := s.cities.Create(s.ctx, "الجيزة", nil)
	s.Require().NoError(err)

	_, err = s.areas.Create(s.ctx, cairo.ID, "مدينة نصر", nil)
	s.Require().NoError(err)
	_, err = s.areas.Create(s.ctx, cairo.ID, "المعادي", nil)
	s.Require().NoError(err)
	// одинаковое имя в другом городе допустимо
	_, err = s.areas.Create(s.ctx, giza.ID, "المعادي", nil)
	s.Require().NoError(err)

	_, err = s.areas.Create(s.ctx, cairo.ID, "المعادي", nil)
	s.ErrorIs(err, errors.ErrNameConflict)

	list, err := s.areas.ListByCity(s.ctx, cairo.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("المعادي", list[0].Name)

	area, err := s.areas.GetByName(s.ctx, giza.ID, "المعادي")
	s.Require().NoError(err)
	s.Equal(giza.ID, area.CityID)

	_, err = s.areas.GetByName(s.ctx, giza.ID, "مدينة نصر")
	s.ErrorIs(err, errors.ErrAreaNotFound)
}

func (s *LocationRepositoryTestSuite) TestDeleteCityCascadesAreas() {
	cairo, err := s.cities.Create(s.ctx, "القاهرة", nil)
	s.Require().NoError(err)
	_, err = s.areas.Create(s.ctx, cairo.ID, "المعادي", nil)
	s.Require().NoError(err)

	s.Require().NoError(s.cities.Delete(s.ctx, cairo.ID))

	areas, err := s.areas.ListByCity(s.ctx, cairo.ID)
	s.Require().NoError(err)
	s.Empty(areas)

	_, err = s.cities.GetByID(s.ctx, cairo.ID)
	s.ErrorIs(err, errors.ErrCityNotFound)
	s.ErrorIs(s.cities.Delete(s.ctx, cairo.ID), errors.ErrCityNotFound)
}

func (s *LocationRepositoryTestSuite) TestUpdate() {
	cairo, err := s.cities.Create(s.ctx, "القاهرة", nil)
	s.Require().NoError(err)
	en := "Cairo"
	updated, err := s.cities.Update(s.ctx, cairo.ID, "القاهرة الكبرى", &en)
	s.Require().NoError(err)
	s.Equal("القاهرة الكبرى", updated.Name)
	s.True(!updated.UpdatedAt.Before(cairo.UpdatedAt))

	area, err := s.areas.Create(s.ctx, cairo.ID, "المعادي", nil)
	s.Require().NoError(err)
	renamed, err := s.areas.Update(s.ctx, area.ID, "المعادي الجديدة", nil)
	s.Require().NoError(err)
	s.Equal("المعادي الجديدة", renamed.Name)

	s.Require().NoError(s.areas.Delete(s.ctx, area.ID))
	s.ErrorIs(s.areas.Delete(s.ctx, area.ID), errors.ErrAreaNotFound)
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
