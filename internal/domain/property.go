package domain

import "time"

// PropertyType - тип недвижимости. Значения хранятся в БД на арабском,
// как их вводит админка.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "شقة"
	PropertyTypeVilla      PropertyType = "فيلا"
	PropertyTypeOffice     PropertyType = "مكتب"
	PropertyTypeLand       PropertyType = "أرض"
	PropertyTypeCommercial PropertyType = "محل تجاري"
	PropertyTypeChalet     PropertyType = "شاليه"
)

// PropertyTypes - все типы в порядке отображения в фильтрах
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeVilla,
	PropertyTypeOffice,
	PropertyTypeLand,
	PropertyTypeCommercial,
	PropertyTypeChalet,
}

func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ListingType - продажа или аренда
type ListingType string

const (
	ListingTypeSale ListingType = "للبيع"
	ListingTypeRent ListingType = "للإيجار"
)

var ListingTypes = []ListingType{ListingTypeSale, ListingTypeRent}

func (t ListingType) Valid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// Property - объявление о недвижимости со всеми полями, включая приватные
type Property struct {
	ID           string       `json:"id" db:"id"`
	PropertyCode string       `json:"property_code" db:"property_code"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description" db:"description"`
	PropertyType PropertyType `json:"property_type" db:"property_type"`
	ListingType  ListingType  `json:"listing_type" db:"listing_type"`
	Price        float64      `json:"price" db:"price"`
	Area         float64      `json:"area" db:"area"`
	Bedrooms     int          `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int          `json:"bathrooms" db:"bathrooms"`
	Floor        *int         `json:"floor" db:"floor"`
	City         string       `json:"city" db:"city"`
	AreaName     string       `json:"area_name" db:"area_name"`
	Address      string       `json:"address" db:"address"`
	Latitude     *float64     `json:"latitude" db:"latitude"`
	Longitude    *float64     `json:"longitude" db:"longitude"`
	Images       []string     `json:"images" db:"-"`
	Featured     bool         `json:"featured" db:"featured"`

	OwnerName     *string  `json:"owner_name,omitempty" db:"owner_name"`
	OwnerPhone    *string  `json:"owner_phone,omitempty" db:"owner_phone"`
	OriginalPrice *float64 `json:"original_price,omitempty" db:"original_price"`
	AdminNotes    *string  `json:"admin_notes,omitempty" db:"admin_notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PublicProperty - объявление без приватных полей
type PublicProperty struct {
	ID           string       `json:"id"`
	PropertyCode string       `json:"property_code"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"property_type"`
	ListingType  ListingType  `json:"listing_type"`
	Price        float64      `json:"price"`
	Area         float64      `json:"area"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Floor        *int         `json:"floor"`
	City         string       `json:"city"`
	AreaName     string       `json:"area_name"`
	Address      string       `json:"address"`
	Latitude     *float64     `json:"latitude"`
	Longitude    *float64     `json:"longitude"`
	Images       []string     `json:"images"`
	Featured     bool         `json:"featured"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PropertyLookup - сокращённая проекция для GET /api/property
type PropertyLookup struct {
	Code     string  `json:"code"`
	Location string  `json:"location"`
	Project  string  `json:"project"`
	Area     float64 `json:"area"`
	Rooms    int     `json:"rooms"`
	Price    float64 `json:"price"`
	Feature  bool    `json:"feature"`
}

func (p Property) Public() PublicProperty {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PublicProperty{
		ID:           p.ID,
		PropertyCode: p.PropertyCode,
		Name:         p.Name,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		Price:        p.Price,
		Area:         p.Area,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Floor:        p.Floor,
		City:         p.City,
		AreaName:     p.AreaName,
		Address:      p.Address,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Images:       images,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p Property) Lookup() PropertyLookup {
	return PropertyLookup{
		Code:     p.PropertyCode,
		Location: p.City,
		Project:  p.Name,
		Area:     p.Area,
		Rooms:    p.Bedrooms,
		Price:    p.Price,
		Feature:  p.Featured,
	}
}

// ToPublic конвертирует список, сохраняя порядок
func ToPublic(properties []Property) []PublicProperty {
	result := make([]PublicProperty, 0, len(properties))
	for _, p := range properties {
		result = append(result, p.Public())
	}
	return result
}

// PropertyCodeRef - минимальная запись для заполнения кодов
type PropertyCodeRef struct {
	ID           string    `json:"id" db:"id"`
	PropertyCode *string   `json:"property_code" db:"property_code"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
