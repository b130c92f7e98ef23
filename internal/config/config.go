// Package config loads application configuration from a config file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingAPIURL is returned when no backend URL is configured.
var ErrMissingAPIURL = errors.New("missing API base URL (set NINJA_API_URL or api_url in config)")

// Config holds application configuration.
type Config struct {
	APIURL          string `mapstructure:"api_url"`          // backend base URL
	CredentialsPath string `mapstructure:"credentials_path"` // path to the stored credentials file
	DBPath          string `mapstructure:"db_path"`          // path to the local SQLite database
	LogLevel        string `mapstructure:"log_level"`        // zerolog level name
	LogFile         string `mapstructure:"log_file"`         // where logs go; empty discards them
}

// Load reads configuration from the config file and environment
// variables. Missing files are fine; a missing API URL is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("ninja")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("api_url", "NINJA_API_URL")
	_ = v.BindEnv("credentials_path", "NINJA_CREDENTIALS")
	_ = v.BindEnv("db_path", "NINJA_DB")
	_ = v.BindEnv("log_level", "NINJA_LOG_LEVEL")
	_ = v.BindEnv("log_file", "NINJA_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APIURL == "" {
		return nil, ErrMissingAPIURL
	}

	return &cfg, nil
}

// configDir returns the directory searched for the config file:
// $XDG_CONFIG_HOME/numberninja or ~/.config/numberninja.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "numberninja"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "numberninja"), nil
}
