// Package config loads and saves spendwise configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v8"
)

// Config holds all spendwise configuration. Values come from defaults,
// then the TOML file, then SPENDWISE_* environment variables.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir" env:"SPENDWISE_DATA_DIR"`
}

// AppearanceConfig holds theme settings for the dashboard.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"SPENDWISE_THEME"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `toml:"level" env:"SPENDWISE_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DataDir: DataDir(),
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendwise")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant default data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spendwise")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DBPath returns the database path inside the configured data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.General.DataDir, "spendwise.db")
}

// LogPath returns the log file path inside the configured data directory.
func (c Config) LogPath() string {
	return filepath.Join(c.General.DataDir, "spendwise.log")
}
