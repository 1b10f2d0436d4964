package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file.
//
// Recognized variables:
//
//	TRAVELFEED_SERVER_URL       base URL of the backend REST API
//	TRAVELFEED_DB_PATH          path to the local session database
//	TRAVELFEED_REQUEST_TIMEOUT  Go duration string, e.g. "15s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TRAVELFEED_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("TRAVELFEED_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TRAVELFEED_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
