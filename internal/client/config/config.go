package config

import "time"

// Config holds runtime settings for the TravelFeed CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabasePath: sqlite file holding the persisted session.
//   - RequestTimeout: per-request deadline for API calls.
//   - DoubleTapWindow: debounce window for the double-tap like gesture.
//   - SearchDebounce: quiet period before a typed search query is sent.
type Config struct {
	ServerBaseURL   string
	DatabasePath    string
	RequestTimeout  time.Duration
	DoubleTapWindow time.Duration
	SearchDebounce  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "travelfeed.db"
	c.RequestTimeout = 15 * time.Second
	c.DoubleTapWindow = 300 * time.Millisecond
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
