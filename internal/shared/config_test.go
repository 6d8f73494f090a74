package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./myflix.db" {
			t.Errorf("expected database path ./myflix.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "https://filmquarry.herokuapp.com/" {
			t.Errorf("expected default base URL, got %s", config.API.BaseURL)
		}

		if config.Notifications.Duration() != 2*time.Second {
			t.Errorf("expected 2s notifications, got %v", config.Notifications.Duration())
		}

		if config.Notifications.DismissLabel != "Ok" {
			t.Errorf("expected dismiss label Ok, got %s", config.Notifications.DismissLabel)
		}

		if config.Profile.GuestUsername != "testuser" {
			t.Errorf("expected guest username testuser, got %s", config.Profile.GuestUsername)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "http://localhost:8080/"
rate_limit = 0

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[notifications]
duration_ms = 500
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "http://localhost:8080/" {
			t.Errorf("expected base URL http://localhost:8080/, got %s", config.API.BaseURL)
		}

		if config.Notifications.Duration() != 500*time.Millisecond {
			t.Errorf("expected 500ms, got %v", config.Notifications.Duration())
		}

		if config.Notifications.DismissLabel != "Ok" {
			t.Errorf("missing keys should keep defaults, got label %q", config.Notifications.DismissLabel)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		config := DefaultConfig()
		env := map[string]string{
			EnvAPIURL:   "http://api.test/",
			EnvDBPath:   "  ",
			EnvLogLevel: "debug",
		}
		config.ApplyEnv(func(k string) string { return env[k] })

		if config.API.BaseURL != "http://api.test/" {
			t.Errorf("expected overridden base URL, got %s", config.API.BaseURL)
		}
		if config.Database.Path != "./myflix.db" {
			t.Errorf("blank env value should not override, got %s", config.Database.Path)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected debug level, got %s", config.Log.Level)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "relative base URL", mutate: func(c *Config) { c.API.BaseURL = "movies" }},
			{name: "negative rate", mutate: func(c *Config) { c.API.RateLimit = -1 }},
			{name: "empty database path", mutate: func(c *Config) { c.Database.Path = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
