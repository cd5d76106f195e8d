package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnameparser/internal/ioconfig"
	"github.com/gnames/gnameparser/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := ioconfig.Load("")
	require.NoError(t, err)

	defaults := config.New()
	assert.Equal(t, defaults.TimeoutMillis, cfg.TimeoutMillis)
	assert.Equal(t, defaults.MaxPoolSize, cfg.MaxPoolSize)
	assert.Equal(t, defaults.Format, cfg.Format)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gnparse.yaml")
	data := `timeout_millis: 250
format: csv
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := ioconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.TimeoutMillis)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched fields keep their defaults
	assert.Equal(t, 100, cfg.MaxPoolSize)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GNPARSE_TIMEOUT_MILLIS", "750")

	cfg, err := ioconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, 750, cfg.TimeoutMillis)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gnparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0644))

	_, err := ioconfig.Load(path)
	assert.Error(t, err)
}
