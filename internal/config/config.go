// Package config loads and persists application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Knowledge base configuration
	KB KBConfig `toml:"kb"`

	// Roster database configuration
	Roster RosterConfig `toml:"roster"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// KBConfig contains knowledge-base settings.
type KBConfig struct {
	Dir   string `toml:"dir"`   // Directory holding characters.json, tiers.json, banners.json
	Watch bool   `toml:"watch"` // Reload the knowledge base when its files change
}

// RosterConfig contains roster persistence settings.
type RosterConfig struct {
	DBPath      string `toml:"db_path"`      // Path to the roster SQLite database
	AutoMigrate bool   `toml:"auto_migrate"` // Run schema migrations on startup
}

// AppConfig contains general application settings.
type AppConfig struct {
	Mode      string `toml:"mode"`       // Default game mode: moc, pf, or as
	DebugMode bool   `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		KB: KBConfig{
			Dir:   "",
			Watch: true,
		},
		Roster: RosterConfig{
			DBPath:      "",
			AutoMigrate: true,
		},
		App: AppConfig{
			Mode:      "moc",
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".starguide")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if the
// file doesn't exist. Unset paths are filled with defaults next to the
// config file.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config.applyDefaults(filepath.Dir(path))
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	config.applyDefaults(filepath.Dir(path))
	return config, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults fills unset paths relative to the config directory.
func (c *Config) applyDefaults(dir string) {
	if c.KB.Dir == "" {
		c.KB.Dir = filepath.Join(dir, "kb")
	}
	if c.Roster.DBPath == "" {
		c.Roster.DBPath = filepath.Join(dir, "roster.db")
	}
	if c.App.Mode == "" {
		c.App.Mode = "moc"
	}
}
