// Package config provides configuration loading and validation for the
// fistsum CLI.
package config

import (
	"errors"
	"fmt"
)

// Sentinel validation errors.
var (
	ErrMissingGroup    = errors.New("expected group is required")
	ErrInvalidFormat   = errors.New("invalid report format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Report formats.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds all configuration for a fistsum run. Flags override the
// config file, which overrides environment variables and defaults.
type Config struct {
	// Group is the expected group owning the scanned storage space. It
	// scopes the report and names it; it does not technically need to
	// be a group name.
	Group string `mapstructure:"group"`

	// SpecialGroup opts a privileged context out of the group-match and
	// root-exclusion rules when it equals Group. Empty never matches.
	SpecialGroup string `mapstructure:"special_group"`

	// Output is the summary JSON destination, "-" for stdout.
	Output string `mapstructure:"output"`

	Histogram HistogramConfig `mapstructure:"histogram"`
	Report    ReportConfig    `mapstructure:"report"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// HistogramConfig controls the optional file-size distribution outputs.
type HistogramConfig struct {
	// Output is the histogram JSON destination, "-" for stdout. Empty
	// disables histogram accounting entirely.
	Output string `mapstructure:"output"`

	// Plot is an optional HTML file rendering the histogram as charts.
	Plot string `mapstructure:"plot"`
}

// ReportConfig controls the summary rendering.
type ReportConfig struct {
	// Format is "json" or "table".
	Format string `mapstructure:"format"`

	// NoColor disables colored output in table mode.
	NoColor bool `mapstructure:"no_color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Group == "" {
		return ErrMissingGroup
	}

	if c.Report.Format != FormatJSON && c.Report.Format != FormatTable {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Report.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}

// HistogramEnabled reports whether size distribution accounting is on.
func (c *Config) HistogramEnabled() bool {
	return c.Histogram.Output != "" || c.Histogram.Plot != ""
}
