package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BedroomsOrMore - значение фильтра комнат, означающее "4 и больше"
const BedroomsOrMore = 4

// PropertyFilter - разобранные критерии поиска. nil или пустая строка
// означают отсутствие ограничения.
type PropertyFilter struct {
	PropertyCode string
	City         string
	Area         string
	PropertyType PropertyType
	ListingType  ListingType
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	Bedrooms     *int
}

// Matches проверяет одно объявление по всем критериям (логическое И)
func (f PropertyFilter) Matches(p Property) bool {
	if f.PropertyCode != "" &&
		!strings.Contains(strings.ToLower(p.PropertyCode), strings.ToLower(f.PropertyCode)) {
		return false
	}
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Area != "" && p.AreaName != f.Area {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.ListingType != "" && p.ListingType != f.ListingType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.Bedrooms != nil {
		if *f.Bedrooms == BedroomsOrMore {
			if p.Bedrooms < BedroomsOrMore {
				return false
			}
		} else if p.Bedrooms != *f.Bedrooms {
			return false
		}
	}
	return true
}

// IsEmpty - ни один критерий не задан
func (f PropertyFilter) IsEmpty() bool {
	return f == PropertyFilter{}
}

// ApplyFilters возвращает новый срез с объявлениями, прошедшими фильтр,
// в исходном порядке. Входной срез не меняется.
func ApplyFilters(properties []Property, filter PropertyFilter) []Property {
	result := make([]Property, 0, len(properties))
	for _, p := range properties {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// Ключи состояния фильтра, совпадают с query-параметрами API
const (
	FilterPropertyCode = "property_code"
	FilterCity         = "city"
	FilterArea         = "area"
	FilterPropertyType = "property_type"
	FilterListingType  = "listing_type"
	FilterMinPrice     = "min_price"
	FilterMaxPrice     = "max_price"
	FilterMinArea      = "min_area"
	FilterBedrooms     = "bedrooms"
)

// FilterKeys - все ключи в порядке формы поиска
var FilterKeys = []string{
	FilterPropertyCode,
	FilterCity,
	FilterArea,
	FilterPropertyType,
	FilterListingType,
	FilterMinPrice,
	FilterMaxPrice,
	FilterMinArea,
	FilterBedrooms,
}

// FilterState - сырые значения формы поиска
type FilterState struct {
	PropertyCode string `json:"property_code"`
	City         string `json:"city"`
	Area         string `json:"area"`
	PropertyType string `json:"property_type"`
	ListingType  string `json:"listing_type"`
	MinPrice     string `json:"min_price"`
	MaxPrice     string `json:"max_price"`
	MinArea      string `json:"min_area"`
	Bedrooms     string `json:"bedrooms"`
}

// Set возвращает новое состояние с изменённым полем.
// Смена города всегда сбрасывает район.
func (s FilterState) Set(key, value string) (FilterState, error) {
	switch key {
	case FilterPropertyCode:
		s.PropertyCode = value
	case FilterCity:
		s.City = value
		s.Area = ""
	case FilterArea:
		s.Area = value
	case FilterPropertyType:
		s.PropertyType = value
	case FilterListingType:
		s.ListingType = value
	case FilterMinPrice:
		s.MinPrice = value
	case FilterMaxPrice:
		s.MaxPrice = value
	case FilterMinArea:
		s.MinArea = value
	case FilterBedrooms:
		s.Bedrooms = value
	default:
		return s, fmt.Errorf("unknown filter key %q", key)
	}
	return s, nil
}

// Reset - пустое состояние
func (s FilterState) Reset() FilterState {
	return FilterState{}
}

// IsEmpty - ни одно поле не заполнено
func (s FilterState) IsEmpty() bool {
	return s == FilterState{}
}

// FilterValueError - значение фильтра не удалось разобрать
type FilterValueError struct {
	Key   string
	Value string
}

func (e *FilterValueError) Error() string {
	return fmt.Sprintf("invalid value %q for filter %s", e.Value, e.Key)
}

// Criteria разбирает состояние в критерии поиска
func (s FilterState) Criteria() (PropertyFilter, error) {
	f := PropertyFilter{
		PropertyCode: strings.TrimSpace(s.PropertyCode),
		City:         s.City,
		Area:         s.Area,
		PropertyType: PropertyType(s.PropertyType),
		ListingType:  ListingType(s.ListingType),
	}

	var err error
	if f.MinPrice, err = parseFloatFilter(FilterMinPrice, s.MinPrice); err != nil {
		return PropertyFilter{}, err
	}
	if f.MaxPrice, err = parseFloatFilter(FilterMaxPrice, s.MaxPrice); err != nil {
		return PropertyFilter{}, err
	}
	if f.MinArea, err = parseFloatFilter(FilterMinArea, s.MinArea); err != nil {
		return PropertyFilter{}, err
	}

	if v := strings.TrimSpace(s.Bedrooms); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return PropertyFilter{}, &FilterValueError{Key: FilterBedrooms, Value: s.Bedrooms}
		}
		f.Bedrooms = &n
	}

	return f, nil
}

func parseFloatFilter(key, raw string) (*float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) {
		return nil, &FilterValueError{Key: key, Value: raw}
	}
	return &n, nil
}
