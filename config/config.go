package config

import (
	"os"
	"time"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	Port           string
	GeminiAPIKey   string
	FixtureBaseURL string
	CacheTTL       time.Duration

	// Single service credential for the demo API surface.
	ServiceEmail        string
	ServicePasswordHash string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment, applying demo-friendly
// defaults where a value is not set.
func Load() {
	ttl := 30 * time.Second
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	AppConfig = Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		Port:                getEnv("PORT", "3000"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		FixtureBaseURL:      getEnv("FIXTURE_BASE_URL", "http://localhost:3000"),
		CacheTTL:            ttl,
		ServiceEmail:        getEnv("SERVICE_EMAIL", ""),
		ServicePasswordHash: getEnv("SERVICE_PASSWORD_HASH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
