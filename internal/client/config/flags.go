package config

import (
	"flag"
	"os"
	"time"

	"github.com/skillswap/skillswap-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   SQLite DSN of the local session database
//	-i int      online check interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local session database")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}

// parseEnv overlays Config with environment variables:
//
//	SKILLSWAP_API_URL  — base URL of the backend API
//	SKILLSWAP_DB       — SQLite DSN of the local session database
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SKILLSWAP_API_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("SKILLSWAP_DB"); ok && v != "" {
		cfg.DatabaseDSN = v
	}
}
