package config

import "github.com/Hamed-Ayodeji/devopsfmt/internal/section"

// Config represents the complete application configuration.
type Config struct {
	// Output is a devopsfmt format name or go-template=<tmpl>.
	Output string `mapstructure:"output"`
	// Border is a devopsfmt border style name.
	Border string `mapstructure:"border"`
	// Color is auto, always or never.
	Color   string `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
	// Title is drawn above bordered tables and used as the HTML caption.
	Title string `mapstructure:"title"`

	// Sections overrides built-in sections by name.
	Sections map[string]section.Override `mapstructure:"sections"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
