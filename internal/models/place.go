package models

import "time"

// Category classifies a tourist place. Values mirror the place-search
// provider mapping; unknown types fall back to CategoryOtro.
type Category string

const (
	CategoryRestaurante     Category = "restaurante"
	CategoryBar             Category = "bar"
	CategoryCafe            Category = "cafe"
	CategoryMuseo           Category = "museo"
	CategoryParque          Category = "parque"
	CategoryMonumento       Category = "monumento"
	CategoryHotel           Category = "hotel"
	CategoryIglesia         Category = "iglesia"
	CategoryCentroComercial Category = "centro_comercial"
	CategoryTienda          Category = "tienda"
	CategoryEntretenimiento Category = "entretenimiento"
	CategoryOtro            Category = "otro"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryRestaurante,
	CategoryBar,
	CategoryCafe,
	CategoryMuseo,
	CategoryParque,
	CategoryMonumento,
	CategoryHotel,
	CategoryIglesia,
	CategoryCentroComercial,
	CategoryTienda,
	CategoryEntretenimiento,
	CategoryOtro,
}

// IsValid reports whether c is one of the known category values.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Place is a tourist place reviews are attached to. Created on first
// reference; GooglePlaceID is unique when the place came from the
// search provider.
type Place struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;index"`
	Address       string    `json:"address" gorm:"size:150"`
	Category      Category  `json:"category" gorm:"size:50;index"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	GooglePlaceID *string   `json:"google_place_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPlaceRequest references a place by provider result when it does not
// exist locally yet. Category is inferred from TypeTags when omitted.
type NewPlaceRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Address       string   `json:"address" validate:"omitempty,max=150"`
	GooglePlaceID string   `json:"google_place_id,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	TypeTags      []string `json:"type_tags,omitempty"`
}
