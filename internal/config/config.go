package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/coin/internal/constants"
	"github.com/pterm/pterm"
)

var validate = validator.New()

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Display    DisplayConfig  `mapstructure:"display"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"max=8"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off none"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Display:  DisplayConfig{CurrencySymbol: constants.DefaultCurrencySymbol},
		Log:      LogConfig{Level: "warn"},
	}
}

// LogLevel maps the configured level name onto a pterm log level.
func (c *Config) LogLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "disabled", "off", "none":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelWarn, fmt.Errorf("unknown log level '%s' (must be trace, debug, info, warn, error or disabled)", c.Log.Level)
	}
}

// Validate checks the loaded values and reports every invalid key.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), getErrorMsg(fe)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "max":
		return "value is too long (max " + err.Param() + ")"
	case "oneof":
		return "must be one of " + err.Param()
	default:
		return "invalid value"
	}
}
