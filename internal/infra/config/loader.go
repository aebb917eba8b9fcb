// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tugasku/internal/domain"
)

// ConfigFileName is the user configuration file name.
const ConfigFileName = "config.toml"

// appDirName is the directory name under XDG config/data homes.
const appDirName = "tugasku"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file merged over defaults.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader reading from the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: DefaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/tugasku (or ~/.config/tugasku).
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDirName)
}

// DefaultDataDir returns $XDG_DATA_HOME/tugasku (or ~/.local/share/tugasku).
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDirName)
}

// Load returns the configuration: defaults overlaid with the user file
// when it exists. A missing file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.confDir == "" {
		return l.resolved(cfg), nil
	}

	path := filepath.Join(l.confDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.resolved(cfg), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return l.resolved(normalize(cfg)), nil
}

// resolved fills in the data directory when the user didn't set one.
func (l *Loader) resolved(cfg *domain.Config) *domain.Config {
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	return cfg
}

// normalize falls back to defaults for fields a partial user file left
// empty or set to unknown values.
func normalize(cfg *domain.Config) *domain.Config {
	def := domain.NewDefaultConfig()
	if cfg.Tasks.Store != domain.StoreJSON && cfg.Tasks.Store != domain.StoreSQLite {
		cfg.Tasks.Store = def.Tasks.Store
	}
	if cfg.Notify.Command == "" {
		cfg.Notify.Command = def.Notify.Command
	}
	if cfg.Notify.PollInterval == "" {
		cfg.Notify.PollInterval = def.Notify.PollInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	return cfg
}
