package domain_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horus-listing/internal/domain"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

func sampleProperties() []domain.Property {
	return []domain.Property{
		{ID: "1", PropertyCode: "Horus001", City: "Cairo", AreaName: "Maadi", Price: 500000, Area: 120, Bedrooms: 3,
			PropertyType: domain.PropertyTypeApartment, ListingType: domain.ListingTypeSale},
		{ID: "2", PropertyCode: "Horus002", City: "Giza", AreaName: "Dokki", Price: 1200000, Area: 250, Bedrooms: 4,
			PropertyType: domain.PropertyTypeVilla, ListingType: domain.ListingTypeSale},
		{ID: "3", PropertyCode: "HORUS013", City: "Cairo", AreaName: "Nasr City", Price: 8000, Area: 90, Bedrooms: 2,
			PropertyType: domain.PropertyTypeApartment, ListingType: domain.ListingTypeRent},
		{ID: "4", PropertyCode: "Horus104", City: "Giza", AreaName: "Dokki", Price: 3000000, Area: 400, Bedrooms: 6,
			PropertyType: domain.PropertyTypeVilla, ListingType: domain.ListingTypeSale},
	}
}

func ids(properties []domain.Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.PropertyFilter
		want   []string
	}{
		{"empty filter keeps everything", domain.PropertyFilter{}, []string{"1", "2", "3", "4"}},
		{"city exact", domain.PropertyFilter{City: "Giza"}, []string{"2", "4"}},
		{"city is case sensitive", domain.PropertyFilter{City: "giza"}, []string{}},
		{"area exact", domain.PropertyFilter{Area: "Nasr City"}, []string{"3"}},
		{"code substring ignores case", domain.PropertyFilter{PropertyCode: "horus0"}, []string{"1", "2", "3"}},
		{"code substring upper", domain.PropertyFilter{PropertyCode: "S1"}, []string{"4"}},
		{"property type", domain.PropertyFilter{PropertyType: domain.PropertyTypeVilla}, []string{"2", "4"}},
		{"listing type", domain.PropertyFilter{ListingType: domain.ListingTypeRent}, []string{"3"}},
		{"min price inclusive", domain.PropertyFilter{MinPrice: ptrFloat64(1200000)}, []string{"2", "4"}},
		{"max price inclusive", domain.PropertyFilter{MaxPrice: ptrFloat64(500000)}, []string{"1", "3"}},
		{"min area inclusive", domain.PropertyFilter{MinArea: ptrFloat64(250)}, []string{"2", "4"}},
		{"bedrooms four means four or more", domain.PropertyFilter{Bedrooms: ptrInt(4)}, []string{"2", "4"}},
		{"bedrooms two is exact", domain.PropertyFilter{Bedrooms: ptrInt(2)}, []string{"3"}},
		{"bedrooms six is exact", domain.PropertyFilter{Bedrooms: ptrInt(6)}, []string{"4"}},
		{"criteria are combined", domain.PropertyFilter{City: "Giza", MaxPrice: ptrFloat64(2000000)}, []string{"2"}},
		{"no match returns empty", domain.PropertyFilter{City: "Alexandria"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ApplyFilters(sampleProperties(), tt.filter)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("ApplyFilters() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyFilters_ExamplesFromListing(t *testing.T) {
	input := []domain.Property{
		{ID: "a", PropertyCode: "Horus001", City: "Cairo", Price: 500000, Bedrooms: 3},
		{ID: "b", PropertyCode: "Horus002", City: "Giza", Price: 1200000, Bedrooms: 4},
	}

	got := domain.ApplyFilters(input, domain.PropertyFilter{City: "Giza"})
	require.Len(t, got, 1)
	assert.Equal(t, "Horus002", got[0].PropertyCode)

	criteria, err := domain.FilterState{MinPrice: "600000"}.Criteria()
	require.NoError(t, err)
	got = domain.ApplyFilters(input, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "Horus002", got[0].PropertyCode)
}

func TestApplyFilters_DoesNotMutateInputAndIsSubset(t *testing.T) {
	input := sampleProperties()
	snapshot := sampleProperties()

	got := domain.ApplyFilters(input, domain.PropertyFilter{ListingType: domain.ListingTypeSale})

	assert.Equal(t, snapshot, input)

	// каждый результат есть во входе, порядок сохраняется
	pos := -1
	for _, p := range got {
		idx := -1
		for i, in := range input {
			if in.ID == p.ID {
				idx = i
				break
			}
		}
		require.NotEqual(t, -1, idx, "result %s is not in input", p.ID)
		assert.Greater(t, idx, pos)
		pos = idx
	}

	got[0].City = "changed"
	assert.Equal(t, "Cairo", input[0].City)
}

func TestApplyFilters_NilInput(t *testing.T) {
	got := domain.ApplyFilters(nil, domain.PropertyFilter{City: "Cairo"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterState_SetCityResetsArea(t *testing.T) {
	state := domain.FilterState{}
	state, err := state.Set(domain.FilterCity, "Giza")
	require.NoError(t, err)
	state, err = state.Set(domain.FilterArea, "Dokki")
	require.NoError(t, err)
	assert.Equal(t, "Dokki", state.Area)

	next, err := state.Set(domain.FilterCity, "Cairo")
	require.NoError(t, err)
	assert.Equal(t, "Cairo", next.City)
	assert.Empty(t, next.Area)

	// исходное значение не меняется
	assert.Equal(t, "Dokki", state.Area)

	same, err := next.Set(domain.FilterCity, "Cairo")
	require.NoError(t, err)
	assert.Empty(t, same.Area)
}

func TestFilterState_SetUnknownKey(t *testing.T) {
	_, err := domain.FilterState{}.Set("colour", "red")
	assert.Error(t, err)
}

func TestFilterState_Reset(t *testing.T) {
	state := domain.FilterState{City: "Giza", Bedrooms: "3"}
	assert.True(t, state.Reset().IsEmpty())
	assert.False(t, state.IsEmpty())
}

func TestFilterState_Criteria(t *testing.T) {
	state := domain.FilterState{
		PropertyCode: " horus ",
		City:         "Cairo",
		MinPrice:     "1000",
		MaxPrice:     "2000.5",
		MinArea:      "80",
		Bedrooms:     "4",
	}

	f, err := state.Criteria()
	require.NoError(t, err)
	assert.Equal(t, "horus", f.PropertyCode)
	assert.Equal(t, 1000.0, *f.MinPrice)
	assert.Equal(t, 2000.5, *f.MaxPrice)
	assert.Equal(t, 80.0, *f.MinArea)
	assert.Equal(t, 4, *f.Bedrooms)

	empty, err := domain.FilterState{}.Criteria()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFilterState_CriteriaInvalidNumbers(t *testing.T) {
	cases := []domain.FilterState{
		{MinPrice: "cheap"},
		{MaxPrice: "NaN"},
		{MinArea: "1e"},
		{Bedrooms: "two"},
		{Bedrooms: "-1"},
	}
	for _, c := range cases {
		_, err := c.Criteria()
		var fvErr *domain.FilterValueError
		assert.ErrorAs(t, err, &fvErr)
	}
}

func TestSortByCreatedDesc_Stable(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	input := []domain.Property{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "c", CreatedAt: base},
		{ID: "d", CreatedAt: base.Add(time.Hour)},
	}

	got := domain.SortByCreatedDesc(input)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(input))
}
