package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys recognized by the client.
const (
	envServerURL = "BOARD_SERVER_URL"
	envDBPath    = "BOARD_DB_PATH"
	envTimeout   = "BOARD_TIMEOUT"
)

// parseEnv overlays cfg with values from a .env file (if one exists in the
// working directory) and the process environment. Missing .env is fine;
// already-set environment variables are not overridden by the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
