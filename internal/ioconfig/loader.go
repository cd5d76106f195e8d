// Package ioconfig provides I/O operations for loading configuration from
// files, environment and flags. This is an impure package.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/pkg/config"
	"github.com/gnames/gnameparser/pkg/errcode"
	"github.com/spf13/viper"
)

// Load reads configuration from a YAML file and returns a Config.
// If configPath is empty, it searches default locations:
//   - ./gnparse.yaml
//   - ~/.config/gnparse/gnparse.yaml
//
// Precedence: env vars > config file > defaults. Flag overrides are applied
// by the CLI on top of the returned value.
func Load(configPath string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Enable environment variable overrides
	v.SetEnvPrefix("GNPARSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config - this allows env vars to work
	// with AutomaticEnv() even when no config file exists
	defaults := config.New()
	v.SetDefault("timeout_millis", defaults.TimeoutMillis)
	v.SetDefault("core_pool_size", defaults.CorePoolSize)
	v.SetDefault("max_pool_size", defaults.MaxPoolSize)
	v.SetDefault("jobs_number", defaults.JobsNumber)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("overrides_file", defaults.OverridesFile)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gnparse")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/gnparse")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &gn.Error{
				Code: errcode.ConfigLoadError,
				Msg:  "Cannot read configuration file <em>%s</em>",
				Vars: []any{v.ConfigFileUsed()},
				Err:  fmt.Errorf("failed to read config: %w", err),
			}
		}
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, &gn.Error{
			Code: errcode.ConfigLoadError,
			Msg:  "Cannot parse configuration file <em>%s</em>",
			Vars: []any{v.ConfigFileUsed()},
			Err:  fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	cfg := config.New()
	cfg.Update(fileCfg.ToOptions())
	return cfg, nil
}
