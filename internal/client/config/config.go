package config

import "time"

// Config holds runtime settings for the roomatch client.
//
// Fields:
//   - APIBaseURL: base URL of the backend matching service.
//   - DatabasePath: sqlite file holding the durable client state.
//   - LogFilePath: where structured logs go (the TUI owns the terminal).
//   - ToastDuration: how long a toast notification stays on screen.
type Config struct {
	APIBaseURL    string
	DatabasePath  string
	LogFilePath   string
	ToastDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "roomatch.db"
	c.LogFilePath = "roomatch.log"
	c.ToastDuration = 4 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
