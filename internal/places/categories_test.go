package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zacatour/backend/internal/models"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name     string
		typeTags []string
		want     models.Category
	}{
		{"restaurant", []string{"restaurant", "food", "point_of_interest"}, models.CategoryRestaurante},
		{"first mapped tag wins", []string{"locality", "museum", "store"}, models.CategoryMuseo},
		{"lodging", []string{"lodging"}, models.CategoryHotel},
		{"place of worship", []string{"place_of_worship", "church"}, models.CategoryIglesia},
		{"no mapped tag", []string{"locality", "political"}, models.CategoryOtro},
		{"empty tags", nil, models.CategoryOtro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFor(tt.typeTags))
		})
	}
}
