package places

import "github.com/zacatour/backend/internal/models"

// categoryByTag maps a provider type tag to a place category.
var categoryByTag = map[string]models.Category{
	"restaurant":         models.CategoryRestaurante,
	"food":               models.CategoryRestaurante,
	"bar":                models.CategoryBar,
	"night_club":         models.CategoryBar,
	"cafe":               models.CategoryCafe,
	"museum":             models.CategoryMuseo,
	"art_gallery":        models.CategoryMuseo,
	"park":               models.CategoryParque,
	"tourist_attraction": models.CategoryMonumento,
	"point_of_interest":  models.CategoryMonumento,
	"lodging":            models.CategoryHotel,
	"church":             models.CategoryIglesia,
	"place_of_worship":   models.CategoryIglesia,
	"shopping_mall":      models.CategoryCentroComercial,
	"store":              models.CategoryTienda,
	"movie_theater":      models.CategoryEntretenimiento,
	"amusement_park":     models.CategoryEntretenimiento,
}

// CategoryFor resolves the place category from the provider type tags:
// the first tag with a mapping wins, everything else is "otro".
func CategoryFor(typeTags []string) models.Category {
	for _, tag := range typeTags {
		if category, ok := categoryByTag[tag]; ok {
			return category
		}
	}
	return models.CategoryOtro
}
