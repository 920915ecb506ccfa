// Package config handles configuration for the SkillSwap client, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the SkillSwap CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST API.
//   - DatabaseDSN: SQLite DSN of the local session database.
//   - OnlineCheckInterval: how often the client probes backend reachability.
type Config struct {
	BaseURL             string
	DatabaseDSN         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.DatabaseDSN = "skillswap.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
