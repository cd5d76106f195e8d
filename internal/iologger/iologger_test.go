package iologger

import (
	"log/slog"
	"testing"

	"github.com/gnames/gnameparser/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), tt.input)
	}
}

func TestInit(t *testing.T) {
	// Init must replace the default logger without error for every
	// format/destination combination
	for _, format := range []string{"json", "text", ""} {
		for _, dest := range []string{"stderr", "stdout", ""} {
			Init(config.LogConfig{
				Format:      format,
				Level:       "info",
				Destination: dest,
			})
			assert.NotNil(t, slog.Default())
		}
	}
}
