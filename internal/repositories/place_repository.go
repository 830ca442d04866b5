package repositories

import (
	"github.com/zacatour/backend/internal/models"
	"gorm.io/gorm"
)

// PlaceRepository defines the interface for tourist place data operations
type PlaceRepository interface {
	GetPlaceByID(id uint) (*models.Place, error)
	GetPlaceByGoogleID(googlePlaceID string) (*models.Place, error)
	FindOrCreate(place *models.Place) error
	GetPlaces() ([]models.Place, error)
	GetPlacesByCategory(category models.Category) ([]models.Place, error)
}

// PostgresPlaceRepository implements PlaceRepository for PostgreSQL
type PostgresPlaceRepository struct {
	db *gorm.DB
}

// NewPostgresPlaceRepository creates a new PostgresPlaceRepository
func NewPostgresPlaceRepository(db *gorm.DB) *PostgresPlaceRepository {
	return &PostgresPlaceRepository{db: db}
}

func (r *PostgresPlaceRepository) GetPlaceByID(id uint) (*models.Place, error) {
	var place models.Place
	if err := r.db.First(&place, id).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PostgresPlaceRepository) GetPlaceByGoogleID(googlePlaceID string) (*models.Place, error) {
	var place models.Place
	if err := r.db.Where("google_place_id = ?", googlePlaceID).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// FindOrCreate loads the existing place matching the provider ID (when
// present) or the name, creating it on first reference. On a hit the
// argument is overwritten with the stored row.
func (r *PostgresPlaceRepository) FindOrCreate(place *models.Place) error {
	query := r.db
	if place.GooglePlaceID != nil && *place.GooglePlaceID != "" {
		query = query.Where("google_place_id = ?", *place.GooglePlaceID)
	} else {
		query = query.Where("name = ?", place.Name)
	}
	return query.FirstOrCreate(place).Error
}

func (r *PostgresPlaceRepository) GetPlaces() ([]models.Place, error) {
	var places []models.Place
	err := r.db.Order("name").Find(&places).Error
	return places, err
}

func (r *PostgresPlaceRepository) GetPlacesByCategory(category models.Category) ([]models.Place, error) {
	var places []models.Place
	err := r.db.Where("category = ?", category).Order("name").Find(&places).Error
	return places, err
}
