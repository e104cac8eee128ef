package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns ~/.config/hartl/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hartl", "config.yaml"), nil
}

// Load loads configuration from ~/.config/hartl/config.yaml. A missing or
// invalid file yields the defaults.
func Load() Config {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	fromFile := cfg
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg
	}
	return fromFile.Normalize()
}
