package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horus-listing/internal/pkg/errors"
)

type sample struct {
	Name         string  `json:"name" validate:"required"`
	PropertyType string  `json:"property_type" validate:"required,property_type"`
	ListingType  string  `json:"listing_type" validate:"required,listing_type"`
	Price        float64 `json:"price" validate:"gt=0"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(&sample{Name: "فيلا الشروق", PropertyType: "فيلا", ListingType: "للبيع", Price: 1})
	assert.NoError(t, err)
}

func TestValidate_ReportsFieldsByJSONName(t *testing.T) {
	err := Validate(&sample{PropertyType: "castle", ListingType: "swap"})
	require.Error(t, err)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, 400, appErr.StatusCode)

	fields, ok := appErr.Details["fields"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "unknown property type", fields["property_type"])
	assert.Equal(t, "unknown listing type", fields["listing_type"])
	assert.Equal(t, "must be greater than 0", fields["price"])

	// общий каталог ошибок не должен меняться
	_, leaked := errors.ErrValidation.Details["fields"]
	assert.False(t, leaked)
}

func TestValidate_NonStruct(t *testing.T) {
	err := Validate("not a struct")
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
}

func TestValidate_WhitespaceOnlyIsBlank(t *testing.T) {
	type named struct {
		Name string `json:"name" validate:"required,notblank"`
	}

	err := Validate(&named{Name: " \t\n "})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, map[string]string{"name": "is required"}, appErr.Details["fields"])

	assert.NoError(t, Validate(&named{Name: " القاهرة "}))
}
