package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nextboard/boardcli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// a duration string like "20s" so config files stay readable.
type jsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	DatabasePath   string `json:"database_path"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// With no such flag this is a no-op. Read or parse errors panic; the caller
// cannot do anything useful with a half-loaded config.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
