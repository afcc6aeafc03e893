package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("API_PORT", "")
	t.Setenv("DEFAULTS_FILE", "")

	_, err := Load("8080")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/flights")
	t.Setenv("API_PORT", "")
	t.Setenv("DEFAULTS_FILE", "")

	cfg, err := Load("8080")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Nil(t, cfg.Defaults.MinSeats)
	assert.Equal(t, 0, cfg.Defaults.Limit)

	t.Setenv("API_PORT", "9000")
	cfg, err = Load("8080")
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoad_DefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	doc := `default_filter:
  min_seats: 1
  limit: 25
metadata:
  api_version: "2.1"
  provider: skylink
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/flights")
	t.Setenv("API_PORT", "")
	t.Setenv("DEFAULTS_FILE", path)

	cfg, err := Load("8080")
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.MinSeats)
	assert.Equal(t, 1, *cfg.Defaults.MinSeats)
	assert.Equal(t, 25, cfg.Defaults.Limit)
	assert.Equal(t, "2.1", cfg.Metadata["api_version"])
	assert.Equal(t, "skylink", cfg.Metadata["provider"])
}

func TestLoad_DefaultsFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	doc := `default_filter:
  min_seats: -2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/flights")
	t.Setenv("DEFAULTS_FILE", path)

	_, err := Load("8080")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_seats")
}

func TestLoad_DefaultsFileMissing(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/flights")
	t.Setenv("DEFAULTS_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load("8080")
	require.Error(t, err)
}
