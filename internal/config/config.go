// Package config provides configuration management for the wave scanner.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/waves/rules"
)

// Config holds all application configuration.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Data    DataConfig    `mapstructure:"data"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScanConfig holds the wave search parameters.
type ScanConfig struct {
	SkipFrom        int      `mapstructure:"skip_from"`
	SkipTo          int      `mapstructure:"skip_to"`
	XYRatio         float64  `mapstructure:"xy_ratio"`
	ZigzagThreshold float64  `mapstructure:"zigzag_threshold"`
	Archetypes      []string `mapstructure:"archetypes"`
	UseZigzag       bool     `mapstructure:"use_zigzag"`
}

// DataConfig holds data input configuration.
type DataConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/wave-scanner"
	}
	return filepath.Join(home, ".config", "wave-scanner")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is
// not an error; defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("scan.skip_from", 0)
	v.SetDefault("scan.skip_to", 8)
	v.SetDefault("scan.xy_ratio", 1.7)
	v.SetDefault("scan.zigzag_threshold", 0.05)
	v.SetDefault("scan.archetypes", []string{})
	v.SetDefault("scan.use_zigzag", true)

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.db_path", filepath.Join(configDir, "scanner.db"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "scanner.log"))
	v.SetDefault("logging.max_size", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WAVE_SCANNER_CSV"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("WAVE_SCANNER_DB"); v != "" {
		cfg.Store.DBPath = v
	}
	if v := os.Getenv("WAVE_SCANNER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WAVE_SCANNER_XY_RATIO"); v != "" {
		if ratio, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scan.XYRatio = ratio
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Scan.SkipFrom < 0 {
		return apperrors.NewValidationError("scan.skip_from", c.Scan.SkipFrom, "must be non-negative")
	}
	if c.Scan.SkipTo < c.Scan.SkipFrom {
		return apperrors.NewValidationError("scan.skip_to", c.Scan.SkipTo, "must be >= scan.skip_from")
	}
	if c.Scan.XYRatio <= 0 {
		return apperrors.NewValidationError("scan.xy_ratio", c.Scan.XYRatio, "must be positive")
	}
	if c.Scan.ZigzagThreshold <= 0 || c.Scan.ZigzagThreshold >= 1 {
		return apperrors.NewValidationError("scan.zigzag_threshold", c.Scan.ZigzagThreshold, "must be in (0, 1)")
	}
	for _, name := range c.Scan.Archetypes {
		if _, err := rules.ByName(name, c.Scan.XYRatio); err != nil {
			return apperrors.NewValidationError("scan.archetypes", name, "unknown archetype")
		}
	}
	return nil
}
