package domain

import "time"

// City - справочник городов
type City struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	NameEn    *string   `json:"name_en,omitempty" db:"name_en"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Area - район, принадлежит ровно одному городу
type Area struct {
	ID        string    `json:"id" db:"id"`
	CityID    string    `json:"city_id" db:"city_id"`
	Name      string    `json:"name" db:"name"`
	NameEn    *string   `json:"name_en,omitempty" db:"name_en"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
