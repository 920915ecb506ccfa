package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"skillswap"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000", cfg.BaseURL)
	require.Equal(t, "skillswap.db", cfg.DatabaseDSN)
	require.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("SKILLSWAP_API_URL", "https://api.example.com")
	t.Setenv("SKILLSWAP_DB", "/tmp/sessions.db")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "https://api.example.com", cfg.BaseURL)
	require.Equal(t, "/tmp/sessions.db", cfg.DatabaseDSN)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "http://10.0.0.5:5000", "-i", "10")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://10.0.0.5:5000", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	require.Equal(t, "skillswap.db", cfg.DatabaseDSN)
}

func TestParseJson_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://json.example.com","online_check_interval":"5s"}`), 0o600))
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://json.example.com", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	require.Equal(t, "skillswap.db", cfg.DatabaseDSN, "unset JSON fields keep defaults")
}

func TestParseJson_NoFileFlag_NoChange(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://localhost:5000", cfg.BaseURL)
}
