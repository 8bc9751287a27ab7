package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/rolodex/schema"
)

// Default values for configuration.
const (
	DefaultLogLevel    = "warn"
	DefaultConfigName  = ".rolodex"
	DefaultEnvPrefix   = "ROLODEX"
	DefaultExportPath  = "contacts"
	MinTableNameWidth  = 10
	MaxTableNameWidth  = 40
	DefaultTermWidth   = 80
	TableReservedWidth = 60
)

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	Output       schema.OutputMode
	ExportFormat schema.ExportFormat
	StoreBackend schema.StoreBackend

	// Today overrides the wall clock when non-zero.
	Today time.Time

	Width     int // Terminal width override (0 = auto-detect)
	UseColors bool

	LogLevel string
	LogMode  schema.LogMode
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Output       string `mapstructure:"output"`
	ExportFormat string `mapstructure:"export-format"`
	StoreBackend string `mapstructure:"store-backend"`
	Today        string `mapstructure:"today"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	LogLevel     string `mapstructure:"log-level"`
	LogMode      string `mapstructure:"log-mode"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Clock returns the clock implied by the config.
func (c *Config) Clock() Clock {
	if c.Today.IsZero() {
		return SystemClock
	}
	return FixedClock(c.Today)
}

// ProcessAndValidate reads from input and populates cfg.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processToday(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all enum-like fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, plain, csv, json", input.Output)
	}

	cfg.ExportFormat = schema.ExportFormat(strings.ToLower(input.ExportFormat))
	if _, ok := schema.ValidExportFormats[cfg.ExportFormat]; !ok {
		return fmt.Errorf("invalid export format '%s'. must be csv, json, parquet", input.ExportFormat)
	}

	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be memory, sqlite", input.StoreBackend)
	}

	cfg.LogMode = schema.LogMode(strings.ToLower(input.LogMode))
	if _, ok := schema.ValidLogModes[cfg.LogMode]; !ok {
		return fmt.Errorf("invalid log mode '%s'. must be development, production", input.LogMode)
	}
	cfg.LogLevel = strings.ToLower(input.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	return nil
}

// processToday parses the optional clock override.
func processToday(cfg *Config, input *ConfigRawInput) error {
	cfg.Today = time.Time{}
	if input.Today == "" {
		return nil
	}
	t, err := time.Parse(schema.DateLayout, input.Today)
	if err != nil {
		return fmt.Errorf("invalid --today value %q: use DD.MM.YYYY", input.Today)
	}
	cfg.Today = schema.CivilDate(t)
	return nil
}
