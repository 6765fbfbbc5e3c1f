package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional app configuration file. Every field has a
// working default; a missing file is not an error.
type Config struct {
	Database struct {
		// Path overrides the default database location.
		// Lower priority than the --db flag and SUMSTARS_DB.
		Path string `yaml:"path"`
	} `yaml:"database"`
	Session struct {
		// Questions overrides the per-session question count.
		Questions int `yaml:"questions"`
	} `yaml:"session"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault reads the config from the default location.
// A missing file yields the zero config without error.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return cfg, err
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/sumstars/config.yaml, falling back to
// ~/.config/sumstars/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sumstars", "config.yaml"), nil
}

// Questions returns the configured question count or the fallback when
// unset or invalid.
func (c Config) Questions(fallback int) int {
	if c.Session.Questions > 0 {
		return c.Session.Questions
	}
	return fallback
}
