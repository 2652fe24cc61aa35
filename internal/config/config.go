// Package config loads CLI settings for the hold command.
//
// Settings come from HOLD_* environment variables with sane defaults; flags
// on the command itself override whatever is loaded here.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for all environment variables (HOLD_*).
	EnvPrefix = "HOLD"

	// FormatText renders lifecycle events through the structured logger.
	FormatText = "text"
	// FormatPlain renders lifecycle events as bare writer-observer lines.
	FormatPlain = "plain"
)

// Config carries the settings the CLI needs.
type Config struct {
	// Initial is the value the scenario constructs first (HOLD_INITIAL).
	Initial int

	// Format selects the event output format (HOLD_FORMAT): text or plain.
	Format string

	// Verbose echoes final instance states after the scenario (HOLD_VERBOSE).
	Verbose bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Initial: 15,
		Format:  FormatText,
		Verbose: false,
	}
}

// Load reads settings from the environment on top of the defaults.
func Load() (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("initial", defaults.Initial)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := Config{
		Initial: v.GetInt("initial"),
		Format:  v.GetString("format"),
		Verbose: v.GetBool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatPlain:
		return nil
	default:
		return fmt.Errorf("config: unknown format %q (want %q or %q)", c.Format, FormatText, FormatPlain)
	}
}
