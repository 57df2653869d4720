// Package config loads devopsfmt settings from a YAML file, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Hamed-Ayodeji/devopsfmt"
	"github.com/Hamed-Ayodeji/devopsfmt/internal/section"
)

const (
	// DefaultConfigDir is the directory under the user config dir.
	DefaultConfigDir = "devopsfmt"
	// DefaultConfigName is the default config file name (without extension).
	DefaultConfigName = "config"
	// EnvPrefix prefixes environment overrides, e.g. DEVOPSFMT_OUTPUT.
	EnvPrefix = "DEVOPSFMT"
)

// flagKeys are the config keys that may be bound to command-line flags of
// the same name.
var flagKeys = []string{"output", "border", "color", "verbose", "title"}

// Load reads configuration. Precedence (highest to lowest):
//  1. flags that were set explicitly
//  2. environment variables (prefixed with DEVOPSFMT_)
//  3. the config file: path when given, else config.yaml in the search paths
//  4. default values
//
// A missing file is only an error when path is given explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for _, key := range flagKeys {
			f := flags.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Registry returns the built-in sections with cfg's overrides applied.
func (c *Config) Registry() (*section.Registry, error) {
	return section.Default().Apply(c.Sections)
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("output", string(devopsfmt.Table))
	v.SetDefault("border", devopsfmt.BorderGrid.String())
	v.SetDefault("color", ColorAuto)
	v.SetDefault("verbose", false)
	v.SetDefault("title", "")
}

// searchPaths lists config directories, most specific first.
func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, DefaultConfigDir))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", DefaultConfigDir))
	}
	return dirs
}

func validate(cfg *Config) error {
	if _, err := devopsfmt.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if _, err := devopsfmt.ParseBorder(cfg.Border); err != nil {
		return err
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s, %s; got %q", ColorAuto, ColorAlways, ColorNever, cfg.Color)
	}
	if _, err := cfg.Registry(); err != nil {
		return err
	}
	return nil
}
