// Package config provides configuration management for gnameparser.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > gnparse.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in gnparse.yaml)
//
// # Environment Variables
//
// Use GNPARSE_ prefix with underscores for nesting:
//
//	GNPARSE_TIMEOUT_MILLIS=2000
//	GNPARSE_MAX_POOL_SIZE=50
//	GNPARSE_LOG_LEVEL=debug
package config

import "runtime"

// Config represents the complete gnameparser configuration.
type Config struct {
	// TimeoutMillis is the hard wall-clock budget of a single parse in
	// milliseconds. Pathological inputs are cut off at this deadline.
	TimeoutMillis int `mapstructure:"timeout_millis" yaml:"timeout_millis"`

	// CorePoolSize is the number of parser workers kept alive when idle.
	CorePoolSize int `mapstructure:"core_pool_size" yaml:"core_pool_size"`

	// MaxPoolSize caps the number of concurrent parser workers shared by
	// all parser instances.
	MaxPoolSize int `mapstructure:"max_pool_size" yaml:"max_pool_size"`

	// JobsNumber is the number of concurrent callers the CLI uses for
	// batch parsing. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Format selects the CLI output format: 'json', 'compact' or 'csv'.
	Format string `mapstructure:"format" yaml:"format"`

	// OverridesFile points to a YAML file with curator-verified parse
	// results that preempt the parsing engine for exact input strings.
	OverridesFile string `mapstructure:"overrides_file" yaml:"overrides_file"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be STDERR or STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		TimeoutMillis: 1000,
		CorePoolSize:  0,
		MaxPoolSize:   100,
		JobsNumber:    runtime.NumCPU(),
		Format:        "json",
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}
}
