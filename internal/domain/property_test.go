package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horus-listing/internal/domain"
)

func TestProperty_PublicDropsPrivateFields(t *testing.T) {
	owner := "Ahmed"
	p := domain.Property{ID: "1", PropertyCode: "Horus001", OwnerName: &owner}

	pub := p.Public()
	assert.Equal(t, "Horus001", pub.PropertyCode)
	assert.NotNil(t, pub.Images)
}

func TestProperty_Lookup(t *testing.T) {
	p := domain.Property{
		PropertyCode: "Horus007",
		City:         "القاهرة",
		Name:         "Palm Hills",
		Area:         180,
		Bedrooms:     3,
		Price:        2500000,
		Featured:     true,
	}

	assert.Equal(t, domain.PropertyLookup{
		Code:     "Horus007",
		Location: "القاهرة",
		Project:  "Palm Hills",
		Area:     180,
		Rooms:    3,
		Price:    2500000,
		Feature:  true,
	}, p.Lookup())
}

func TestEnums(t *testing.T) {
	assert.True(t, domain.PropertyTypeCommercial.Valid())
	assert.False(t, domain.PropertyType("castle").Valid())
	assert.True(t, domain.ListingTypeRent.Valid())
	assert.False(t, domain.ListingType("").Valid())
}

func TestFormatPropertyCode(t *testing.T) {
	assert.Equal(t, "Horus001", domain.FormatPropertyCode(1))
	assert.Equal(t, "Horus042", domain.FormatPropertyCode(42))
	assert.Equal(t, "Horus1000", domain.FormatPropertyCode(1000))
}

func TestIsBlankCode(t *testing.T) {
	blank := "   "
	code := "Horus001"
	assert.True(t, domain.IsBlankCode(nil))
	assert.True(t, domain.IsBlankCode(&blank))
	assert.False(t, domain.IsBlankCode(&code))
}

func TestComputeStats(t *testing.T) {
	stats := domain.ComputeStats([]domain.PriceRef{
		{ListingType: domain.ListingTypeSale, Price: 100},
		{ListingType: domain.ListingTypeSale, Price: 200},
		{ListingType: domain.ListingTypeRent, Price: 5},
		{ListingType: "unknown", Price: 1},
	})

	assert.Equal(t, domain.PropertyStats{Total: 4, ForSale: 2, ForRent: 1, TotalValue: 306}, stats)
}
