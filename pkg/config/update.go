package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for gnparse.yaml.
// Used for round-tripping gnparse.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	if c.TimeoutMillis > 0 {
		res = append(res, OptTimeoutMillis(c.TimeoutMillis))
	}
	if c.CorePoolSize >= 0 {
		res = append(res, OptCorePoolSize(c.CorePoolSize))
	}
	if c.MaxPoolSize > 0 {
		res = append(res, OptMaxPoolSize(c.MaxPoolSize))
	}
	if c.JobsNumber > 0 {
		res = append(res, OptJobsNumber(c.JobsNumber))
	}
	if c.Format != "" {
		res = append(res, OptFormat(c.Format))
	}
	if c.OverridesFile != "" {
		res = append(res, OptOverridesFile(c.OverridesFile))
	}
	if c.Log.Level != "" {
		res = append(res, OptLogLevel(c.Log.Level))
	}
	if c.Log.Format != "" {
		res = append(res, OptLogFormat(c.Log.Format))
	}
	if c.Log.Destination != "" {
		res = append(res, OptLogDestination(c.Log.Destination))
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegInt(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Format":          {"json": s, "compact": s, "csv": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"stderr": s, "stdout": s},
	}
	if _, ok := data[name][strings.ToLower(val)]; ok {
		return true
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	gn.Warn(fmt.Sprintf(
		"<em>%s</em> has to be one of %s, ignoring '%s'",
		name, strings.Join(vals, ", "), val,
	))
	return false
}
