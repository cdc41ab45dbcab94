package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"os"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	ApiPort string

	// JWT
	JwtSecret string
	JwtTTL    time.Duration

	// Mapbox geocoding. Optional: when empty, location search degrades to
	// empty results instead of failing.
	MapboxToken          string
	MapboxGeocodingURL   string
	GeocodeResultLimit   int
	GeocodeMinQueryChars int

	// Moderation
	FlagAutoHideThreshold int

	// Toasts
	ToastDefaultDuration time.Duration

	// Auth stub
	MockAuthDelay time.Duration

	// Rate Limiting Defaults
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.JwtSecret, err = getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}
	cfg.MapboxToken = getEnv("MAPBOX_TOKEN", "")
	cfg.MapboxGeocodingURL = getEnv("MAPBOX_GEOCODING_URL", "https://api.mapbox.com/geocoding/v5/mapbox.places")

	jwtTTLSeconds, err := strconv.ParseInt(getEnv("JWT_TTL_SECONDS", "3600"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL_SECONDS: %w", err)
	}
	cfg.JwtTTL = time.Duration(jwtTTLSeconds) * time.Second

	cfg.GeocodeResultLimit, err = strconv.Atoi(getEnv("GEOCODE_RESULT_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODE_RESULT_LIMIT: %w", err)
	}

	cfg.GeocodeMinQueryChars, err = strconv.Atoi(getEnv("GEOCODE_MIN_QUERY_CHARS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODE_MIN_QUERY_CHARS: %w", err)
	}

	cfg.FlagAutoHideThreshold, err = strconv.Atoi(getEnv("FLAG_AUTO_HIDE_THRESHOLD", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid FLAG_AUTO_HIDE_THRESHOLD: %w", err)
	}

	toastDurationMs, err := strconv.ParseInt(getEnv("TOAST_DURATION_MS", "3500"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TOAST_DURATION_MS: %w", err)
	}
	cfg.ToastDefaultDuration = time.Duration(toastDurationMs) * time.Millisecond

	mockAuthDelayMs, err := strconv.ParseInt(getEnv("MOCK_AUTH_DELAY_MS", "800"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_AUTH_DELAY_MS: %w", err)
	}
	cfg.MockAuthDelay = time.Duration(mockAuthDelayMs) * time.Millisecond

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
