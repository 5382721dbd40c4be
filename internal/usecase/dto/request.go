package dto

import (
	"strings"

	"github.com/horus-listing/internal/domain"
)

// PropertyRequest - тело создания и изменения объявления в админке
type PropertyRequest struct {
	PropertyCode  string   `json:"property_code" validate:"omitempty,max=32"`
	Name          string   `json:"name" validate:"required,notblank,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	PropertyType  string   `json:"property_type" validate:"required,property_type"`
	ListingType   string   `json:"listing_type" validate:"required,listing_type"`
	Price         float64  `json:"price" validate:"gt=0"`
	Area          float64  `json:"area" validate:"gt=0"`
	Bedrooms      int      `json:"bedrooms" validate:"gte=0,lte=100"`
	Bathrooms     int      `json:"bathrooms" validate:"gte=0,lte=100"`
	Floor         *int     `json:"floor" validate:"omitempty,gte=-5,lte=200"`
	City          string   `json:"city" validate:"required,notblank"`
	AreaName      string   `json:"area_name"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Images        []string `json:"images" validate:"omitempty,max=30,dive,url"`
	Featured      bool     `json:"featured"`
	OwnerName     *string  `json:"owner_name"`
	OwnerPhone    *string  `json:"owner_phone"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gt=0"`
	AdminNotes    *string  `json:"admin_notes"`
}

// ToDomain - запись без ID и дат
func (r PropertyRequest) ToDomain() *domain.Property {
	images := make([]string, len(r.Images))
	copy(images, r.Images)

	return &domain.Property{
		PropertyCode:  strings.TrimSpace(r.PropertyCode),
		Name:          strings.TrimSpace(r.Name),
		Description:   r.Description,
		PropertyType:  domain.PropertyType(r.PropertyType),
		ListingType:   domain.ListingType(r.ListingType),
		Price:         r.Price,
		Area:          r.Area,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Floor:         r.Floor,
		City:          r.City,
		AreaName:      r.AreaName,
		Address:       r.Address,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Images:        images,
		Featured:      r.Featured,
		OwnerName:     r.OwnerName,
		OwnerPhone:    r.OwnerPhone,
		OriginalPrice: r.OriginalPrice,
		AdminNotes:    r.AdminNotes,
	}
}

// CityRequest - создание и переименование города
type CityRequest struct {
	Name   string  `json:"name" validate:"required,notblank,max=100"`
	NameEn *string `json:"name_en" validate:"omitempty,max=100"`
}

// AreaRequest - создание и переименование района
type AreaRequest struct {
	Name   string  `json:"name" validate:"required,notblank,max=100"`
	NameEn *string `json:"name_en" validate:"omitempty,max=100"`
}
