package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/TomSchuck/yardcrop/internal/config"
)

// IGeocoder defines the interface for forward-geocoding location queries.
type IGeocoder interface {
	GeocodeSearch(ctx context.Context, query string) []Result
}

// Result is one geocoding candidate.
type Result struct {
	ID        string   `json:"id"`
	PlaceName string   `json:"place_name"`
	Text      string   `json:"text"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	PlaceType []string `json:"place_type"`
}

// mapboxResponse mirrors the Mapbox Geocoding v5 payload.
type mapboxResponse struct {
	Features []struct {
		ID        string     `json:"id"`
		PlaceName string     `json:"place_name"`
		Text      string     `json:"text"`
		Center    [2]float64 `json:"center"` // [lng, lat]
		PlaceType []string   `json:"place_type"`
	} `json:"features"`
	Query []string `json:"query"`
}

// North County San Diego search bias: results gravitate toward this center
// and are clipped to the bounding box (roughly San Diego County).
const (
	proximityLng = -117.27
	proximityLat = 33.13
)

var boundingBox = [4]float64{-117.6, 32.8, -116.9, 33.5} // west, south, east, north

// mapboxGeocoder implements IGeocoder against the Mapbox Geocoding v5 API.
type mapboxGeocoder struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewMapboxGeocoder creates a new Mapbox geocoding client.
func NewMapboxGeocoder(cfg *config.Config) IGeocoder {
	return &mapboxGeocoder{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// GeocodeSearch issues a forward-geocode request for the query. It never
// returns an error: missing configuration, short queries, transport failures
// and malformed responses all degrade to an empty result list and a log line.
func (g *mapboxGeocoder) GeocodeSearch(ctx context.Context, query string) []Result {
	if g.cfg.MapboxToken == "" {
		log.Println("WARN: Mapbox token not configured. Skipping geocode request.")
		return []Result{}
	}

	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < g.cfg.GeocodeMinQueryChars {
		return []Result{}
	}

	params := url.Values{}
	params.Set("access_token", g.cfg.MapboxToken)
	params.Set("proximity", fmt.Sprintf("%g,%g", proximityLng, proximityLat))
	params.Set("bbox", fmt.Sprintf("%g,%g,%g,%g", boundingBox[0], boundingBox[1], boundingBox[2], boundingBox[3]))
	params.Set("limit", fmt.Sprintf("%d", g.cfg.GeocodeResultLimit))
	params.Set("types", "address,postcode,place,neighborhood,locality")
	params.Set("country", "US")

	endpoint := fmt.Sprintf("%s/%s.json?%s", g.cfg.MapboxGeocodingURL, url.PathEscape(trimmed), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Error creating geocode request: %v", err)
		return []Result{}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("Error calling Mapbox geocoding API: %v", err)
		return []Result{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error reading geocode response body: %v", err)
		return []Result{}
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Mapbox geocoding returned non-OK status: %d - Body: %s", resp.StatusCode, string(body))
		return []Result{}
	}

	var mbResp mapboxResponse
	if err := json.Unmarshal(body, &mbResp); err != nil {
		log.Printf("Error unmarshalling geocode response body: %v - Body: %s", err, string(body))
		return []Result{}
	}

	results := make([]Result, 0, len(mbResp.Features))
	for _, feature := range mbResp.Features {
		results = append(results, Result{
			ID:        feature.ID,
			PlaceName: feature.PlaceName,
			Text:      feature.Text,
			Longitude: feature.Center[0],
			Latitude:  feature.Center[1],
			PlaceType: feature.PlaceType,
		})
	}
	return results
}

var (
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	digitPattern = regexp.MustCompile(`\d`)
)

// streetKeywords are tokens that suggest the query is an address rather than
// a produce search.
var streetKeywords = []string{
	"street", "st", "avenue", "ave", "road", "rd", "drive", "dr",
	"lane", "ln", "boulevard", "blvd", "way", "court", "ct",
	"place", "pl", "circle", "cir",
}

// MightBeLocation is a cheap gate that decides whether a free-text search
// looks like a location (zip code, address-like, or street keyword) before
// spending a geocode request on it.
func MightBeLocation(query string) bool {
	trimmed := strings.TrimSpace(query)

	if zipPattern.MatchString(trimmed) {
		return true
	}

	if digitPattern.MatchString(trimmed) && len([]rune(trimmed)) >= 5 {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, keyword := range streetKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}
