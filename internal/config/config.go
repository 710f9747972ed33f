// Package config loads redactorder settings from a .env file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tsawler/redaction/order"
)

// Prefix is prepended to every environment variable name
const Prefix = "REDACTION"

// Log output formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds all environment-based configuration.
// Field names map to environment variables with the REDACTION_ prefix.
type Config struct {
	// LogLevel is the minimum level logged (debug, info, warn, error).
	// Env: REDACTION_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is console or json.
	// Env: REDACTION_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Direction is the reading direction used to break ties, ltr or rtl.
	// Env: REDACTION_DIRECTION (default: ltr)
	Direction string `envconfig:"DIRECTION" default:"ltr"`

	// ExtendedKeys compares every zone instead of only the topmost one.
	// Env: REDACTION_EXTENDED_KEYS (default: false)
	ExtendedKeys bool `envconfig:"EXTENDED_KEYS" default:"false"`

	// DBPath is the session database used by the save and show commands.
	// Env: REDACTION_DB_PATH (default: redaction.db)
	DBPath string `envconfig:"DB_PATH" default:"redaction.db"`

	// ExemptionCatalog is an optional exemption-code XML file used to
	// validate the codes of loaded redactions.
	// Env: REDACTION_EXEMPTION_CATALOG
	ExemptionCatalog string `envconfig:"EXEMPTION_CATALOG"`
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the optional .env file, then the environment, and validates
// the result. Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings
func (c Config) Validate() error {
	if _, err := ParseDirection(c.Direction); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: want %s or %s", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	return nil
}

// OrderConfig builds the spatial ordering configuration
func (c Config) OrderConfig() (order.Config, error) {
	dir, err := ParseDirection(c.Direction)
	if err != nil {
		return order.Config{}, err
	}
	cfg := order.DefaultConfig()
	cfg.Direction = dir
	cfg.ExtendedKeys = c.ExtendedKeys
	return cfg, nil
}

// ParseDirection parses "ltr" or "rtl"; empty means ltr
func ParseDirection(s string) (order.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr", "left-to-right":
		return order.LeftToRight, nil
	case "rtl", "right-to-left":
		return order.RightToLeft, nil
	default:
		return order.LeftToRight, fmt.Errorf("invalid direction %q: want ltr or rtl", s)
	}
}
