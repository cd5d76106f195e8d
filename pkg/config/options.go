package config

import "strings"

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptTimeoutMillis sets the per-parse wall-clock budget in milliseconds.
func OptTimeoutMillis(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout Millis", i) {
			c.TimeoutMillis = i
		}
	}
}

// OptCorePoolSize sets the number of workers kept alive when idle.
// Zero is a valid value: all idle workers are reaped.
func OptCorePoolSize(i int) Option {
	return func(c *Config) {
		if isValidNonNegInt("Core Pool Size", i) {
			c.CorePoolSize = i
		}
	}
}

// OptMaxPoolSize caps the number of concurrent parser workers.
func OptMaxPoolSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Max Pool Size", i) {
			c.MaxPoolSize = i
		}
	}
}

// OptJobsNumber sets the number of concurrent callers for batch parsing.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptFormat sets the CLI output format.
func OptFormat(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Format", s) {
			c.Format = s
		}
	}
}

// OptOverridesFile sets the path of the curator overrides YAML file.
func OptOverridesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		// empty means no overrides file, which is valid
		c.OverridesFile = s
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the logging format.
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets the logging destination.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}
