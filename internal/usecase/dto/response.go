package dto

import "github.com/horus-listing/internal/domain"

// SearchResponse - результат фильтрации публичного каталога
type SearchResponse struct {
	Items   []domain.PublicProperty `json:"items"`
	Total   int                     `json:"total"`
	Matched int                     `json:"matched"`
}

// AdminSearchResponse - то же для админки, с приватными полями
type AdminSearchResponse struct {
	Items   []domain.Property `json:"items"`
	Total   int               `json:"total"`
	Matched int               `json:"matched"`
}

// SectionsResponse - блоки главной страницы
type SectionsResponse struct {
	Featured []domain.PublicProperty `json:"featured"`
	Latest   []domain.PublicProperty `json:"latest"`
	All      []domain.PublicProperty `json:"all"`
}

// NextCodeResponse - код, который получит следующее объявление
type NextCodeResponse struct {
	Code string `json:"code"`
}

// FilterOptionsResponse - значения выпадающих списков формы поиска
type FilterOptionsResponse struct {
	PropertyTypes []domain.PropertyType `json:"property_types"`
	ListingTypes  []domain.ListingType  `json:"listing_types"`
	Bedrooms      []int                 `json:"bedrooms"`
}

// CodeAssignment - код, выданный объявлению при заполнении
type CodeAssignment struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// BackfillResult - итог заполнения кодов
type BackfillResult struct {
	Total       int              `json:"total"`
	Updated     int              `json:"updated"`
	Failed      int              `json:"failed"`
	DryRun      bool             `json:"dry_run"`
	Assignments []CodeAssignment `json:"assignments"`
}

// SeedResult - итог загрузки справочников
type SeedResult struct {
	CitiesCreated int `json:"cities_created"`
	AreasCreated  int `json:"areas_created"`
	Skipped       int `json:"skipped"`
}
