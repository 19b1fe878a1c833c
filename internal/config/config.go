// Package config loads application settings from defaults, an optional YAML file
// and TILT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TILT_LOGGER_LEVEL.
const EnvPrefix = "TILT"

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "tilt-engine"

// Config holds the entire application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Play   PlayConfig   `mapstructure:"play" yaml:"play"`
}

// LoggerConfig controls the zap logger built by the observability package.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`

	// Rotating JSON log file; empty disables it.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// PlayConfig tunes the interactive terminal driver.
type PlayConfig struct {
	TiltStep  float64 `mapstructure:"tilt_step" yaml:"tilt_step"` // cells/s² per key press
	MaxTilt   float64 `mapstructure:"max_tilt" yaml:"max_tilt"`   // cells/s²
	FrameRate int     `mapstructure:"frame_rate" yaml:"frame_rate"`
}

// MaxFrameRate keeps the play ticker interval well above zero.
const MaxFrameRate = 1000

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "tilt-engine")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("play.tilt_step", 4.0)
	v.SetDefault("play.max_tilt", 40.0)
	v.SetDefault("play.frame_rate", 60)
}

// Load reads configuration from path, or from ./tilt-engine.yaml when path is
// empty. A missing default file is not an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would leave a driver unusable.
func (c *Config) Validate() error {
	switch {
	case c.Play.TiltStep <= 0:
		return fmt.Errorf("play.tilt_step must be positive, got %v", c.Play.TiltStep)
	case c.Play.MaxTilt <= 0:
		return fmt.Errorf("play.max_tilt must be positive, got %v", c.Play.MaxTilt)
	case c.Play.FrameRate <= 0 || c.Play.FrameRate > MaxFrameRate:
		return fmt.Errorf("play.frame_rate must be between 1 and %d, got %d", MaxFrameRate, c.Play.FrameRate)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.Logger.Format)
	}
	return nil
}
