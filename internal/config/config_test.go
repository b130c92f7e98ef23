package config

import (
	"errors"
	"testing"
)

func TestLoad_MissingAPIURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NINJA_API_URL", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIURL) {
		t.Fatalf("err = %v, want ErrMissingAPIURL", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NINJA_API_URL", "https://api.example.com")
	t.Setenv("NINJA_DB", "/tmp/ninja-test.db")
	t.Setenv("NINJA_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.DBPath != "/tmp/ninja-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_DefaultLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NINJA_API_URL", "https://api.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}
