package config_test

import (
	"runtime"
	"testing"

	"github.com/gnames/gnameparser/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, 1000, cfg.TimeoutMillis)
		assert.Equal(t, 0, cfg.CorePoolSize)
		assert.Equal(t, 100, cfg.MaxPoolSize)
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "", cfg.OverridesFile)

		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "stderr", cfg.Log.Destination)
	})
}

func TestOptTimeoutMillis(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid timeout",
			input:    250,
			expected: 250,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 1000, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: 1000, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTimeoutMillis(tt.input)})
			assert.Equal(t, tt.expected, cfg.TimeoutMillis)
		})
	}
}

func TestOptPoolSizes(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptCorePoolSize(2),
		config.OptMaxPoolSize(10),
	})
	assert.Equal(t, 2, cfg.CorePoolSize)
	assert.Equal(t, 10, cfg.MaxPoolSize)

	// zero core pool is valid, zero max pool is not
	cfg.Update([]config.Option{
		config.OptCorePoolSize(0),
		config.OptMaxPoolSize(0),
	})
	assert.Equal(t, 0, cfg.CorePoolSize)
	assert.Equal(t, 10, cfg.MaxPoolSize)

	cfg.Update([]config.Option{config.OptCorePoolSize(-1)})
	assert.Equal(t, 0, cfg.CorePoolSize)
}

func TestOptFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets csv",
			input:    "csv",
			expected: "csv",
		},
		{
			name:     "sets compact",
			input:    "compact",
			expected: "compact",
		},
		{
			name:     "rejects unknown format",
			input:    "xml",
			expected: "json", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Format)
		})
	}
}

func TestOptLog(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogLevel("debug"),
		config.OptLogFormat("json"),
		config.OptLogDestination("stdout"),
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogLevel("verbose"),
		config.OptLogFormat("yaml"),
		config.OptLogDestination("file"),
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Destination)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTimeoutMillis(1500),
		config.OptMaxPoolSize(42),
		config.OptFormat("csv"),
		config.OptOverridesFile("overrides.yaml"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg, clone)
}
