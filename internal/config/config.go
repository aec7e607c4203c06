// Package config loads tourstate settings from a tourstate.env file and
// TOURSTATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tourstate/cities"
	"github.com/katalvlaran/tourstate/tsp"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// EnvPrefix prefixes every environment override, e.g. TOURSTATE_SEED.
const EnvPrefix = "TOURSTATE"

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	CitiesFile string `mapstructure:"CITIES_FILE"`
	Delimiter  string `mapstructure:"DELIMITER"`
	Header     bool   `mapstructure:"HEADER"`
	Seed       int64  `mapstructure:"SEED"`
	Shuffle    bool   `mapstructure:"SHUFFLE"`
	Strategy   string `mapstructure:"STRATEGY"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"CITIES_FILE": "",
	"DELIMITER":   ",",
	"HEADER":      false,
	"SEED":        0,
	"SHUFFLE":     false,
	"STRATEGY":    tsp.SampleRejection.String(),
	"LOG_LEVEL":   zerolog.InfoLevel.String(),
}

// Load reads configuration from path/tourstate.env, overridden by
// environment variables. A missing file is not an error.
func Load(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("tourstate")
	v.SetConfigType("env")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}
	err = config.Validate()
	return
}

// Validate checks the fields that are parsed further downstream.
func (c Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if _, err := tsp.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: STRATEGY: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed LOG_LEVEL.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// DelimiterRune returns the field separator. "tab" and `\t` name the tab
// character; otherwise the value must be a single rune that
// cities.CheckDelimiter accepts.
func (c Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: DELIMITER %q is not a single character", ErrInvalidConfig, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if err := cities.CheckDelimiter(r); err != nil {
		return 0, fmt.Errorf("%w: DELIMITER: %v", ErrInvalidConfig, err)
	}
	return r, nil
}

// NeighborhoodStrategy returns the parsed STRATEGY.
func (c Config) NeighborhoodStrategy() tsp.Strategy {
	s, _ := tsp.ParseStrategy(c.Strategy)
	return s
}
