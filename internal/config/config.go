// Package config handles resolving configuration.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MinSecretLen is the minimum length of the session signing secret in bytes.
const MinSecretLen = 32

// Config is the complete application configuration.
type Config struct {
	LogLevel   string   `yaml:"log_level"`
	WebAddress string   `yaml:"web_address"`
	DevMode    bool     `yaml:"dev_mode"`
	Database   Database `yaml:"database"`
	Session    Session  `yaml:"session"`
}

// Database selects the SQL driver and its data source. For SQLite the source
// is a file path (or ":memory:"); for PostgreSQL it is a connection string.
type Database struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// Session configures the login session cookie.
type Session struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	Lifetime   time.Duration `yaml:"lifetime"`
	Secure     bool          `yaml:"secure"`
}

// Default returns a version of the config with all default values populated.
// Note that this configuration is _not_ valid, as the session secret must be
// set.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		WebAddress: "localhost:9999",
		DevMode:    false,
		Database: Database{
			Driver: DriverSQLite,
			Source: filepath.Join(xdg.DataHome, "bulletin", "db.sqlite"),
		},
		Session: Session{
			Secret:     "", // must be set by the user
			CookieName: "bulletin_session",
			Lifetime:   24 * time.Hour, //nolint:mnd // one day
			Secure:     false,
		},
	}
}

// Load loads a YAML configuration file from a path, merges it with defaults, and
// validates it for completeness.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Write marshals cfg to YAML and writes it to path with owner-only access.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil { //nolint:mnd // owner rwx access
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil { //nolint:mnd // owner rw access
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	if c.WebAddress == "" {
		errs = append(errs, errors.New("web_address: must be set"))
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver: must be %q or %q, got %q",
			DriverSQLite, DriverPostgres, c.Database.Driver))
	}
	if c.Database.Source == "" {
		errs = append(errs, errors.New("database.source: must be set"))
	}
	if len(c.Session.Secret) < MinSecretLen {
		errs = append(errs, fmt.Errorf("session.secret: must be at least %d bytes", MinSecretLen))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name: must be set"))
	}
	if c.Session.Lifetime <= 0 {
		errs = append(errs, errors.New("session.lifetime: must be positive"))
	}
	return errors.Join(errs...)
}

// GenerateSecret returns a random, URL-safe session secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, MinSecretLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
