// Package config provides configuration management for the payoff builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/kshitizgarg19/payoff-builder/internal/payoff"
)

// Config holds all application configuration.
type Config struct {
	Curve  CurveConfig  `mapstructure:"curve"`
	Server ServerConfig `mapstructure:"server"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// CurveConfig holds the payoff sweep and breakeven parameters.
type CurveConfig struct {
	LowFactor            float64 `mapstructure:"low_factor"`            // lower bound of price sweep as fraction of spot
	HighFactor           float64 `mapstructure:"high_factor"`           // upper bound as fraction of spot
	Samples              int     `mapstructure:"samples"`               // resolution of the sweep
	BreakevenTolerance   float64 `mapstructure:"breakeven_tolerance"`   // absolute currency band for breakeven detection
	InterpolateBreakeven bool    `mapstructure:"interpolate_breakeven"` // use exact zero-crossing interpolation instead of the band
}

// ServerConfig holds the HTTP API configuration.
type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// UIConfig holds terminal output configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/payoff-builder"
	}
	return filepath.Join(home, ".config", "payoff-builder")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Curve: CurveConfig{
			LowFactor:          0.5,
			HighFactor:         1.5,
			Samples:            300,
			BreakevenTolerance: 5.0,
		},
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		UI: UIConfig{
			ColorEnabled: true,
			DateFormat:   "02-Jan-2006",
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config file is not an error: a template is written and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		if err := writeTemplate(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("curve.low_factor", def.Curve.LowFactor)
	v.SetDefault("curve.high_factor", def.Curve.HighFactor)
	v.SetDefault("curve.samples", def.Curve.Samples)
	v.SetDefault("curve.breakeven_tolerance", def.Curve.BreakevenTolerance)
	v.SetDefault("curve.interpolate_breakeven", def.Curve.InterpolateBreakeven)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.cors_origins", def.Server.CORSOrigins)
	v.SetDefault("ui.color_enabled", def.UI.ColorEnabled)
	v.SetDefault("ui.date_format", def.UI.DateFormat)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	v.SetDefault("log.file", def.Log.File)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAYOFF_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PAYOFF_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Curve.LowFactor <= 0 {
		return fmt.Errorf("curve.low_factor must be positive")
	}
	if c.Curve.HighFactor <= c.Curve.LowFactor {
		return fmt.Errorf("curve.high_factor must be greater than curve.low_factor")
	}
	if c.Curve.Samples < 2 {
		return fmt.Errorf("curve.samples must be at least 2")
	}
	if c.Curve.Samples > payoff.MaxSamples {
		return fmt.Errorf("curve.samples must be at most %d", payoff.MaxSamples)
	}
	if c.Curve.BreakevenTolerance < 0 {
		return fmt.Errorf("curve.breakeven_tolerance must be non-negative")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}

const configTemplate = `# Payoff Builder Configuration

[curve]
# Lower bound of the price sweep as a fraction of spot
low_factor = 0.5
# Upper bound of the price sweep as a fraction of spot
high_factor = 1.5
# Number of evenly spaced prices in the sweep
samples = 300
# Absolute currency band for breakeven detection
breakeven_tolerance = 5.0
# Use exact zero-crossing interpolation instead of the tolerance band
interpolate_breakeven = false

[server]
# HTTP API port
port = 8080
# Allowed CORS origins for the browser chart front-end
cors_origins = ["*"]

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"

[log]
# Log level: debug, info, warn, error
level = "info"
# Log to the terminal
console = true
# Log to a rotating file under the config directory
file = true
`

func writeTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
