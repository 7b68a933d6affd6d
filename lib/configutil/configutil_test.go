package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl   string  `json:"base_url"`
	RateLimit float64 `json:"rate_limit_seconds"`
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	err := os.WriteFile(name, []byte(`{
		// defaults checked into the repo
		base_url: "https://example.com/api",
		rate_limit_seconds: 1,
	}`), 0600)
	require.NoError(t, err)

	err = os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{ rate_limit_seconds: 0.25 }`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/api", cfg.BaseUrl)
	require.Equal(t, 0.25, cfg.RateLimit)
}
