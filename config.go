package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// appConfig only controls diagnostics; the calculation and the transcript
// are the same under every setting.
type appConfig struct {
	AppEnv string
	Debug  bool
	// DotEnvLoaded records whether a .env file was found, for the debug log.
	DotEnvLoaded bool
}

// loadConfig reads an optional .env file and then the process environment.
// A missing .env file is normal; a malformed one is an error.
func loadConfig() (*appConfig, error) {
	loaded := true
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		loaded = false
	}

	cfg := &appConfig{
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
		Debug:        getEnvBool("WELLNESS_DEBUG", false),
		DotEnvLoaded: loaded,
	}
	if cfg.AppEnv == "development" {
		cfg.Debug = true
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
