package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full application configuration, read from the environment.
type Config struct {
	Server        ServerConfig
	LLM           LLMConfig
	Providers     ProviderConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port               string
	RateLimitPerSecond int
	RateLimitBurst     int
	AllowedOrigins     []string
}

type LLMConfig struct {
	GeminiAPIKey string
	Model        string
}

// ProviderConfig keys are all optional; a missing key disables that provider
// and the service degrades to its next source.
type ProviderConfig struct {
	OpenTripMapAPIKey string
	FoursquareAPIKey  string
	UnsplashAccessKey string
	PexelsAPIKey      string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

// Load reads configuration from the environment, with a best-effort .env
// load first. Only the Gemini key is required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               envOrDefault("SERVER_PORT", "8080"),
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 40),
			AllowedOrigins:     []string{envOrDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000")},
		},
		LLM: LLMConfig{
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			Model:        os.Getenv("GEMINI_MODEL"),
		},
		Providers: ProviderConfig{
			OpenTripMapAPIKey: os.Getenv("OPENTRIPMAP_API_KEY"),
			FoursquareAPIKey:  os.Getenv("FOURSQUARE_API_KEY"),
			UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
			PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: envBool("METRICS_ENABLED", true),
		},
	}

	if cfg.LLM.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
