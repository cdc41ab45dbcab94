package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomSchuck/yardcrop/internal/config"
)

func testGeocodeConfig(baseURL string) *config.Config {
	return &config.Config{
		MapboxToken:          "test-token",
		MapboxGeocodingURL:   baseURL,
		GeocodeResultLimit:   5,
		GeocodeMinQueryChars: 2,
	}
}

func TestGeocodeSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "-117.27,33.13", r.URL.Query().Get("proximity"))
		assert.Equal(t, "-117.6,32.8,-116.9,33.5", r.URL.Query().Get("bbox"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "address,postcode,place,neighborhood,locality", r.URL.Query().Get("types"))
		assert.Equal(t, "US", r.URL.Query().Get("country"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [
				{
					"id": "postcode.123",
					"place_name": "Encinitas, California 92024, United States",
					"text": "92024",
					"center": [-117.29, 33.04],
					"place_type": ["postcode"]
				}
			],
			"query": ["92024"]
		}`))
	}))
	defer server.Close()

	geocoder := NewMapboxGeocoder(testGeocodeConfig(server.URL))
	results := geocoder.GeocodeSearch(context.Background(), "92024")

	require.Len(t, results, 1)
	assert.Equal(t, "postcode.123", results[0].ID)
	assert.Equal(t, "Encinitas, California 92024, United States", results[0].PlaceName)
	assert.Equal(t, 33.04, results[0].Latitude)
	assert.Equal(t, -117.29, results[0].Longitude)
	assert.Equal(t, []string{"postcode"}, results[0].PlaceType)
}

func TestGeocodeSearch_NonOKStatusDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Not Authorized"}`))
	}))
	defer server.Close()

	geocoder := NewMapboxGeocoder(testGeocodeConfig(server.URL))
	results := geocoder.GeocodeSearch(context.Background(), "92024")
	assert.Empty(t, results)
}

func TestGeocodeSearch_MalformedBodyDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	geocoder := NewMapboxGeocoder(testGeocodeConfig(server.URL))
	results := geocoder.GeocodeSearch(context.Background(), "92024")
	assert.Empty(t, results)
}

func TestGeocodeSearch_MissingTokenSkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	cfg := testGeocodeConfig(server.URL)
	cfg.MapboxToken = ""
	geocoder := NewMapboxGeocoder(cfg)

	assert.Empty(t, geocoder.GeocodeSearch(context.Background(), "92024"))
	assert.Equal(t, 0, requests)
}

func TestGeocodeSearch_ShortQuerySkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	geocoder := NewMapboxGeocoder(testGeocodeConfig(server.URL))
	assert.Empty(t, geocoder.GeocodeSearch(context.Background(), " a "))
	assert.Equal(t, 0, requests)
}

func TestMightBeLocation(t *testing.T) {
	cases := []struct {
		query string
		want  bool
	}{
		{"92024", true},
		{"92024-1234", true},
		{"123 Main St", true},
		{"Leucadia Blvd", true},
		{"45678 somewhere", true},
		{"lemons", false},
		{"fresh eggs", false},
		{"a1", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MightBeLocation(tc.query), "query: %q", tc.query)
	}
}
