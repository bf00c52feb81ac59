// ABOUTME: Configuration loader for the planner service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Caching
	ScenarioCacheTTL int // seconds, for preset scenario plans (default 300)
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over .env values.
func Load() (*Config, error) {
	// godotenv.Load does not override variables already set
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		ScenarioCacheTTL:   getEnvInt("SCENARIO_CACHE_TTL", 300),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.ScenarioCacheTTL < 0 {
		return nil, fmt.Errorf("SCENARIO_CACHE_TTL must be non-negative, got %d", cfg.ScenarioCacheTTL)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
