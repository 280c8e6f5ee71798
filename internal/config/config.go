package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the public auction API
const DefaultAPIBaseURL = "https://v2.api.noroff.dev"

// Config holds runtime configuration sourced from env vars
type Config struct {
	Port          string
	APIBaseURL    string
	BearerToken   string
	APIKey        string
	APIKeyName    string
	SessionDBPath string
	HTTPTimeout   time.Duration
	LogLevel      string
}

// Load reads a .env file when present, then the environment
func Load() (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		BearerToken:   getEnv("BEARER_TOKEN", ""),
		APIKey:        getEnv("API_KEY", ""),
		APIKeyName:    getEnv("API_KEY_NAME", ""),
		SessionDBPath: getEnv("SESSION_DB_PATH", "session.db"),
		HTTPTimeout:   15 * time.Second,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if raw := getEnv("HTTP_TIMEOUT", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.HTTPTimeout = parsed
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, errors.New("API_BASE_URL must be an absolute URL")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the gateway to bind to
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
