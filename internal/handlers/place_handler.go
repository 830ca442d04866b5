package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/places"
	"github.com/zacatour/backend/internal/repositories"
)

// PlaceHandler handles tourist place HTTP requests
type PlaceHandler struct {
	placeRepository repositories.PlaceRepository
	searchClient    *places.Client
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(placeRepo repositories.PlaceRepository, searchClient *places.Client) *PlaceHandler {
	return &PlaceHandler{
		placeRepository: placeRepo,
		searchClient:    searchClient,
	}
}

// RegisterPlaceRoutes registers place-related routes
func (h *PlaceHandler) RegisterPlaceRoutes(g *echo.Group) {
	g.GET("/places", h.GetPlaces)
	g.GET("/places/search", h.SearchPlaces)
	g.POST("/places", h.CreatePlace)
}

// GetPlaces lists known places, optionally filtered by category
func (h *PlaceHandler) GetPlaces(c echo.Context) error {
	category := models.Category(c.QueryParam("categoria"))

	var (
		result []models.Place
		err    error
	)
	if category != "" {
		if !category.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown category")
		}
		result, err = h.placeRepository.GetPlacesByCategory(category)
	} else {
		result, err = h.placeRepository.GetPlaces()
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"places": result})
}

// SearchPlaces queries the place-search provider for candidates
func (h *PlaceHandler) SearchPlaces(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	results := h.searchClient.Search(c.Request().Context(), query)
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

// CreatePlace registers a place from a provider candidate or manual
// entry, reusing the existing row when already known
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.NewPlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	place := &models.Place{
		Name:      req.Name,
		Address:   req.Address,
		Category:  places.CategoryFor(req.TypeTags),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.GooglePlaceID != "" {
		id := req.GooglePlaceID
		place.GooglePlaceID = &id
	}

	if err := h.placeRepository.FindOrCreate(place); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, place)
}
