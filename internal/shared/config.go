package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables that override values from the config file.
const (
	EnvConfigPath = "MYFLIX_CONFIG"
	EnvAPIURL     = "MYFLIX_API_URL"
	EnvDBPath     = "MYFLIX_DB_PATH"
	EnvLogLevel   = "MYFLIX_LOG_LEVEL"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API           APIConfig          `toml:"api"`
	Database      DatabaseConfig     `toml:"database"`
	Notifications NotificationConfig `toml:"notifications"`
	Profile       ProfileConfig      `toml:"profile"`
	Log           LogConfig          `toml:"log"`
}

// APIConfig contains settings for the myFlix REST API.
type APIConfig struct {
	BaseURL   string  `toml:"base_url"`
	RateLimit float64 `toml:"rate_limit"`
	UserAgent string  `toml:"user_agent"`
	Timeout   int     `toml:"timeout"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// NotificationConfig controls how transient messages are shown.
type NotificationConfig struct {
	DurationMS   int    `toml:"duration_ms"`
	DismissLabel string `toml:"dismiss_label"`
}

// ProfileConfig contains account related settings.
type ProfileConfig struct {
	GuestUsername string `toml:"guest_username"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration returns the notification display time.
func (n NotificationConfig) Duration() time.Duration {
	if n.DurationMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(n.DurationMS) * time.Millisecond
}

// RequestTimeout returns the per-request timeout, zero meaning none.
func (a APIConfig) RequestTimeout() time.Duration {
	if a.Timeout <= 0 {
		return 0
	}
	return time.Duration(a.Timeout) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides config values with any non-empty environment variables
// returned by lookup. Pass [os.Getenv] outside of tests.
func (c *Config) ApplyEnv(lookup func(string) string) {
	if v := strings.TrimSpace(lookup(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(lookup(EnvDBPath)); v != "" {
		c.Database.Path = v
	}
	if v := strings.TrimSpace(lookup(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate reports configuration values that would make the client unusable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api.base_url %q is not an absolute URL", ErrInvalidConfig, c.API.BaseURL)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("%w: api.rate_limit must not be negative", ErrInvalidConfig)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is required", ErrInvalidConfig)
	}
	return nil
}
