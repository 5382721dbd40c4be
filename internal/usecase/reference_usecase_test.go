package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository/mocks"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/repository/cache"
	"github.com/horus-listing/internal/usecase"
	"github.com/horus-listing/internal/usecase/dto"
)

const cityID = "0d9c3c7e-2f4e-4a59-8f3a-7d98b1c2a001"

func newReferenceUseCase() (*usecase.ReferenceUseCase, *mocks.CityRepository, *mocks.AreaRepository) {
	cities := &mocks.CityRepository{}
	areas := &mocks.AreaRepository{}
	rc := cache.NewReferenceCache(cities, areas, zap.NewNop(), 0, nil)
	return usecase.NewReferenceUseCase(rc, zap.NewNop()), cities, areas
}

func TestReferenceUseCase_CreateCityTrimsAndValidates(t *testing.T) {
	uc, cities, _ := newReferenceUseCase()
	cities.On("Create", mock.Anything, "أسوان", mock.Anything).Return(&domain.City{ID: cityID, Name: "أسوان"}, nil)

	city, err := uc.CreateCity(context.Background(), dto.CityRequest{Name: "  أسوان "})
	require.NoError(t, err)
	assert.Equal(t, cityID, city.ID)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err = uc.CreateCity(context.Background(), dto.CityRequest{Name: name})
		appErr, ok := errors.As(err)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, errors.ErrValidation.Code, appErr.Code)
	}
	cities.AssertNumberOfCalls(t, "Create", 1)
}

func TestReferenceUseCase_BlankNamesRejectedBeforeStore(t *testing.T) {
	uc, cities, areas := newReferenceUseCase()
	ctx := context.Background()

	_, err := uc.UpdateCity(ctx, cityID, dto.CityRequest{Name: "  "})
	assert.ErrorIs(t, err, errors.ErrValidation)
	_, err = uc.CreateArea(ctx, cityID, dto.AreaRequest{Name: "  "})
	assert.ErrorIs(t, err, errors.ErrValidation)
	_, err = uc.UpdateArea(ctx, cityID, dto.AreaRequest{Name: "\t"})
	assert.ErrorIs(t, err, errors.ErrValidation)

	cities.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	areas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	areas.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReferenceUseCase_InvalidIDsRejectedBeforeStore(t *testing.T) {
	uc, _, _ := newReferenceUseCase()
	ctx := context.Background()

	_, err := uc.AreasByCity(ctx, "cairo")
	assert.ErrorIs(t, err, errors.ErrInvalidID)
	_, err = uc.UpdateCity(ctx, "1", dto.CityRequest{Name: "x"})
	assert.ErrorIs(t, err, errors.ErrInvalidID)
	assert.ErrorIs(t, uc.DeleteCity(ctx, "1"), errors.ErrInvalidID)
	_, err = uc.CreateArea(ctx, "1", dto.AreaRequest{Name: "x"})
	assert.ErrorIs(t, err, errors.ErrInvalidID)
	_, err = uc.UpdateArea(ctx, "1", dto.AreaRequest{Name: "x"})
	assert.ErrorIs(t, err, errors.ErrInvalidID)
	assert.ErrorIs(t, uc.DeleteArea(ctx, "1"), errors.ErrInvalidID)
}

func TestReferenceUseCase_AreasByCityName(t *testing.T) {
	uc, cities, areas := newReferenceUseCase()
	cities.On("List", mock.Anything).Return([]domain.City{{ID: cityID, Name: "القاهرة"}}, nil)
	areas.On("ListByCity", mock.Anything, cityID).Return([]domain.Area{{ID: "a1", CityID: cityID, Name: "الزمالك"}}, nil)

	assert.Len(t, uc.AreasByCityName(context.Background(), "القاهرة"), 1)
	assert.Len(t, uc.AreasByCityName(context.Background(), "القاهرة"), 1)
	assert.Empty(t, uc.AreasByCityName(context.Background(), ""))
	cities.AssertNumberOfCalls(t, "List", 1)
	cities.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	areas.AssertNumberOfCalls(t, "ListByCity", 1)
}

func TestSeedUseCase_SkipsExistingNames(t *testing.T) {
	cities := &mocks.CityRepository{}
	areas := &mocks.AreaRepository{}
	rc := cache.NewReferenceCache(cities, areas, zap.NewNop(), 0, nil)

	cairo := &domain.City{ID: cityID, Name: "القاهرة"}
	giza := &domain.City{ID: "giza-id", Name: "الجيزة"}
	cities.On("GetByName", mock.Anything, "القاهرة").Return(cairo, nil)
	cities.On("GetByName", mock.Anything, "الجيزة").Return(nil, errors.ErrCityNotFound).Once()
	cities.On("GetByName", mock.Anything, "الجيزة").Return(giza, nil)
	cities.On("Create", mock.Anything, "الجيزة", mock.Anything).Return(giza, nil)

	areas.On("GetByName", mock.Anything, cityID, "المعادي").Return(&domain.Area{ID: "a1"}, nil)
	areas.On("GetByName", mock.Anything, cityID, "الزمالك").Return(nil, errors.ErrAreaNotFound)
	areas.On("GetByName", mock.Anything, "giza-id", "الدقي").Return(nil, errors.ErrAreaNotFound)
	areas.On("Create", mock.Anything, cityID, "الزمالك", mock.Anything).Return(&domain.Area{ID: "a2"}, nil)
	areas.On("Create", mock.Anything, "giza-id", "الدقي", mock.Anything).Return(nil, errors.ErrNameConflict)

	seed, err := usecase.ParseSeed(strings.NewReader(`
cities:
  - name: القاهرة
    name_en: Cairo
    areas:
      - name: المعادي
      - name: الزمالك
  - name: الجيزة
    areas:
      - name: الدقي
`))
	require.NoError(t, err)

	res, err := usecase.NewSeedUseCase(rc, zap.NewNop()).Seed(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, dto.SeedResult{CitiesCreated: 1, AreasCreated: 1, Skipped: 3}, *res)
}

func TestParseSeed_Errors(t *testing.T) {
	_, err := usecase.ParseSeed(strings.NewReader("cities:\n  - name_en: Nameless\n"))
	assert.Error(t, err)

	_, err = usecase.ParseSeed(strings.NewReader("towns: []\n"))
	assert.Error(t, err, "unknown fields are rejected")

	seed, err := usecase.ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Cities)
}
