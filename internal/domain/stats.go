package domain

// PropertyStats - сводка для панели администратора
type PropertyStats struct {
	Total      int     `json:"total"`
	ForSale    int     `json:"for_sale"`
	ForRent    int     `json:"for_rent"`
	TotalValue float64 `json:"total_value"`
}

// PriceRef - поля объявления, нужные для статистики
type PriceRef struct {
	ListingType ListingType `json:"listing_type" db:"listing_type"`
	Price       float64     `json:"price" db:"price"`
}

func ComputeStats(refs []PriceRef) PropertyStats {
	var stats PropertyStats
	stats.Total = len(refs)
	for _, r := range refs {
		switch r.ListingType {
		case ListingTypeSale:
			stats.ForSale++
		case ListingTypeRent:
			stats.ForRent++
		}
		stats.TotalValue += r.Price
	}
	return stats
}
