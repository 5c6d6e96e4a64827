// Package config loads the optional ~/.timescore.yaml file holding the open
// tuning parameters. A missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// SleepBonus is added to the 100-point energy baseline on the daily
	// reset. Zero until a sensible value is settled on.
	SleepBonus float64 `yaml:"sleep_bonus"`
	// DBPath overrides the database location.
	DBPath string `yaml:"db_path"`
}

func Default() Config {
	return Config{}
}

// DefaultPath returns ~/.timescore.yaml, or the TIMESCORE_CONFIG override.
func DefaultPath() (string, error) {
	if env := os.Getenv("TIMESCORE_CONFIG"); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".timescore.yaml"), nil
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}
