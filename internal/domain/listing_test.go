package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horus-listing/internal/domain"
)

// makeCollection - n объявлений; каждое третье - featured, created_at растёт с индексом
func makeCollection(n int) []domain.Property {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]domain.Property, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Property{
			ID:        fmt.Sprintf("p%02d", i),
			Featured:  i%3 == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestPartitionListings_Limits(t *testing.T) {
	sections := domain.PartitionListings(makeCollection(20))

	assert.Len(t, sections.Featured, domain.FeaturedLimit)
	assert.Len(t, sections.Latest, domain.LatestLimit)
	assert.Len(t, sections.All, 20)
}

func TestPartitionListings_FeaturedKeepsInputOrder(t *testing.T) {
	sections := domain.PartitionListings(makeCollection(20))
	assert.Equal(t, []string{"p00", "p03", "p06"}, ids(sections.Featured))
}

func TestPartitionListings_FeaturedAndLatestAreDisjoint(t *testing.T) {
	for n := 0; n <= 15; n++ {
		sections := domain.PartitionListings(makeCollection(n))

		featured := make(map[string]bool)
		for _, p := range sections.Featured {
			featured[p.ID] = true
		}
		for _, p := range sections.Latest {
			assert.False(t, featured[p.ID], "n=%d: %s is in both sections", n, p.ID)
		}
		assert.LessOrEqual(t, len(sections.Featured), domain.FeaturedLimit)
		assert.LessOrEqual(t, len(sections.Latest), domain.LatestLimit)
	}
}

func TestPartitionListings_LatestIsNewestFirstAndIncludesSurplusFeatured(t *testing.T) {
	sections := domain.PartitionListings(makeCollection(20))

	// p18 featured, но не входит в первые три - попадает в latest
	assert.Equal(t, []string{"p19", "p18", "p17", "p16", "p15", "p14"}, ids(sections.Latest))
}

func TestPartitionListings_AllSortedDescIncludingFeatured(t *testing.T) {
	input := makeCollection(5)
	sections := domain.PartitionListings(input)

	assert.Equal(t, []string{"p04", "p03", "p02", "p01", "p00"}, ids(sections.All))
	assert.Equal(t, "p00", input[0].ID, "input must not be reordered")
}

func TestPartitionListings_EqualTimestampsAreStable(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	input := []domain.Property{
		{ID: "x", CreatedAt: ts},
		{ID: "y", CreatedAt: ts},
		{ID: "z", CreatedAt: ts},
	}

	first := domain.PartitionListings(input)
	second := domain.PartitionListings(input)

	require.Equal(t, ids(first.All), ids(second.All))
	assert.Equal(t, []string{"x", "y", "z"}, ids(first.All))
	assert.Equal(t, []string{"x", "y", "z"}, ids(first.Latest))
}

func TestPartitionListings_Empty(t *testing.T) {
	sections := domain.PartitionListings(nil)
	assert.Empty(t, sections.Featured)
	assert.Empty(t, sections.Latest)
	assert.Empty(t, sections.All)
}
