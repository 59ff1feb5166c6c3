package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALESFORECAST"

// Config holds the debug knobs of the application. Everything else in the
// UI surface is fixed.
type Config struct {
	LogLevel     string  `mapstructure:"log_level"`
	JSONLogs     bool    `mapstructure:"json_logs"`
	WindowWidth  float32 `mapstructure:"window_width"`
	WindowHeight float32 `mapstructure:"window_height"`

	level zerolog.Level
}

// Load reads configuration from the environment over defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("window_width", 1000)
	v.SetDefault("window_height", 700)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every field and records the parsed log level.
func (c *Config) Validate() error {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}

	c.level = level
	return nil
}

// Level returns the level recorded by Validate.
func (c *Config) Level() zerolog.Level {
	return c.level
}
