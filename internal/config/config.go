package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values come from
// an optional config.yaml in the gymlog directory, overridable via
// GYMLOG_* environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultsConfig pre-fills the planning form: how many sets a new
// exercise starts with, and the session type picklist.
type DefaultsConfig struct {
	Sets  int      `mapstructure:"sets"`
	Types []string `mapstructure:"types"`
}

// DefaultTypes is the built-in session type picklist. Free text is
// still accepted everywhere a type is entered.
var DefaultTypes = []string{
	"Legs",
	"Back & Biceps",
	"Chest & Triceps",
	"Shoulders",
	"Cardio",
	"Full Body",
	"Other",
}

// Load reads the configuration from ~/.gymlog.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(home, ".gymlog"))
}

// LoadFrom reads the configuration from the given directory. A missing
// config file is fine; defaults and environment variables apply.
func LoadFrom(dir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GYMLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("database.path", filepath.Join(dir, "gymlog.db"))
	v.SetDefault("defaults.sets", 3)
	v.SetDefault("defaults.types", DefaultTypes)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
