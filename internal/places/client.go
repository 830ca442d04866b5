package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zacatour/backend/internal/models"
)

const textSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// maxResults caps how many provider candidates a search returns.
const maxResults = 10

// Result is a candidate place record from the search provider.
type Result struct {
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	TypeTags   []string        `json:"type_tags"`
	Category   models.Category `json:"category"`
}

// Client searches the Google Places text-search API scoped to the
// configured region. Results are cached in Redis; a provider failure is
// logged and yields an empty candidate list rather than an error.
type Client struct {
	httpClient *http.Client
	apiKey     string
	region     string
	cache      *redis.Client
	cacheTTL   time.Duration
}

// NewClient creates a place-search client. cache may be nil, in which
// case every search hits the provider.
func NewClient(apiKey, region string, cache *redis.Client) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		region:     region,
		cache:      cache,
		cacheTTL:   1 * time.Hour,
	}
}

type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Types []string `json:"types"`
	} `json:"results"`
}

// Search finds candidate places for a free-text query.
func (c *Client) Search(ctx context.Context, query string) []Result {
	cacheKey := "places:search:" + query

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var results []Result
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results
			}
		}
	}

	results, err := c.search(ctx, query)
	if err != nil {
		log.Printf("place search %q failed: %v", query, err)
		return []Result{}
	}

	if c.cache != nil {
		if payload, err := json.Marshal(results); err == nil {
			if err := c.cache.Set(ctx, cacheKey, payload, c.cacheTTL).Err(); err != nil {
				log.Printf("place search cache write failed: %v", err)
			}
		}
	}
	return results
}

func (c *Client) search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s %s", query, c.region))
	params.Set("key", c.apiKey)
	params.Set("language", "es")
	params.Set("region", "mx")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, textSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("provider status %s", payload.Status)
	}

	results := make([]Result, 0, maxResults)
	for _, place := range payload.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{
			ExternalID: place.PlaceID,
			Name:       place.Name,
			Address:    place.FormattedAddress,
			Latitude:   place.Geometry.Location.Lat,
			Longitude:  place.Geometry.Location.Lng,
			TypeTags:   place.Types,
			Category:   CategoryFor(place.Types),
		})
	}
	return results, nil
}
