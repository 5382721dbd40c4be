package domain

import "sort"

const (
	FeaturedLimit = 3
	LatestLimit   = 6
)

// ListingSections - блоки главной страницы
type ListingSections struct {
	Featured []Property
	Latest   []Property
	All      []Property
}

// PartitionListings делит коллекцию на блоки главной страницы.
// Featured и Latest не пересекаются по ID, All содержит всё.
func PartitionListings(properties []Property) ListingSections {
	featured := make([]Property, 0, FeaturedLimit)
	featuredIDs := make(map[string]struct{}, FeaturedLimit)
	for _, p := range properties {
		if len(featured) == FeaturedLimit {
			break
		}
		if p.Featured {
			featured = append(featured, p)
			featuredIDs[p.ID] = struct{}{}
		}
	}

	rest := make([]Property, 0, len(properties))
	for _, p := range properties {
		if _, ok := featuredIDs[p.ID]; !ok {
			rest = append(rest, p)
		}
	}
	latest := SortByCreatedDesc(rest)
	if len(latest) > LatestLimit {
		latest = latest[:LatestLimit]
	}

	return ListingSections{
		Featured: featured,
		Latest:   latest,
		All:      SortByCreatedDesc(properties),
	}
}

// SortByCreatedDesc - копия, отсортированная по дате создания (новые первыми).
// Сортировка стабильная.
func SortByCreatedDesc(properties []Property) []Property {
	sorted := make([]Property, len(properties))
	copy(sorted, properties)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
