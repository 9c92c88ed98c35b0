// Package config loads runtime settings for the boardcli client.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults -> JSON config file (-c/-config) -> .env / environment -> flags.
package config

import "time"

// Config holds runtime settings for the boardcli client.
//
// Fields:
//   - ServerBaseURL: base URL of the board REST backend.
//   - DatabasePath: sqlite file holding the persisted token pair.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "boardcli.db"
	c.RequestTimeout = 20 * time.Second
}

// Load constructs a Config by layering all sources.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
