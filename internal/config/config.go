// Package config provides Templar's settings: defaults, an optional config
// file, TEMPLAR_* environment variables, and an optional .env file, in
// ascending precedence below CLI flags.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"templar/internal/logger"
)

// Setting keys.
const (
	KeyStrict   = "strict"
	KeyLogLevel = "log-level"
	KeyColor    = "color"
)

// Load initializes the configuration. A missing .env or config file is not
// an error; a malformed config file is.
func Load() error {
	// .env values become process environment before viper reads it.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	viper.SetDefault(KeyStrict, false)
	viper.SetDefault(KeyLogLevel, "")
	viper.SetDefault(KeyColor, "auto")

	viper.SetEnvPrefix("TEMPLAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("templar")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/templar")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	} else {
		logger.Debug("Loaded config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// Strict reports whether strict reconciliation is enabled: an optional
// parameter missing from the compiled defaults becomes a command failure.
func Strict() bool {
	return viper.GetBool(KeyStrict)
}

// LogLevel returns the configured log level, empty when unset.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// Color returns the configured color mode: auto, always, or never.
func Color() string {
	return viper.GetString(KeyColor)
}
