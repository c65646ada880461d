// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	API         APIConfig
	Catalog     CatalogConfig
	Chat        ChatConfig
	Stub        StubConfig
}

// APIConfig describes the remote storefront backend this client talks to.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	RateLimitRPS   float64
	RateLimitBurst int
}

type CatalogConfig struct {
	CacheTTLMinutes int
	ItemsPerPage    int
	MaxPrice        float64
}

type ChatConfig struct {
	Enabled bool
}

// StubConfig drives the local development stub of the backend API.
type StubConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
	JWTSecret    string
	TokenTTL     int // in hours
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getEnvAsInt("API_TIMEOUT", 15),
			RateLimitRPS:   getEnvAsFloat("API_RATE_LIMIT_RPS", 10),
			RateLimitBurst: getEnvAsInt("API_RATE_LIMIT_BURST", 20),
		},
		Catalog: CatalogConfig{
			CacheTTLMinutes: getEnvAsInt("CATALOG_CACHE_TTL", 30),
			ItemsPerPage:    getEnvAsInt("CATALOG_ITEMS_PER_PAGE", 12),
			MaxPrice:        getEnvAsFloat("CATALOG_MAX_PRICE", 100000),
		},
		Chat: ChatConfig{
			Enabled: getEnvAsBool("CHAT_ENABLED", true),
		},
		Stub: StubConfig{
			Port:         getEnv("STUB_PORT", "8080"),
			Host:         getEnv("STUB_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("STUB_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("STUB_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("STUB_IDLE_TIMEOUT", 60),
			JWTSecret:    getEnv("STUB_JWT_SECRET", "stub-secret-not-for-production"),
			TokenTTL:     getEnvAsInt("STUB_TOKEN_TTL", 24),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if c.Catalog.ItemsPerPage < 1 {
		return fmt.Errorf("items per page must be positive")
	}
	return nil
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLMinutes) * time.Minute
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
