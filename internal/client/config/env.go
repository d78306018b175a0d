package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL   = "VIDHUB_API_URL"
	EnvDataDir  = "VIDHUB_DATA_DIR"
	EnvLogLevel = "LOG_LEVEL"
	EnvLogDev   = "LOG_DEV"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogDev); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.LogDev = dev
	}
}
