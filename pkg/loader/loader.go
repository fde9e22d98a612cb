package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dicklesworthstone/ribbon/pkg/config"
)

// ConfigDir and ConfigFile name the project-local config location
const (
	ConfigDir  = ".ribbon"
	ConfigFile = "config.yaml"
)

// ConfigPath returns the config file location for a project directory.
// An empty dir means the current working directory.
func ConfigPath(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return filepath.Join(dir, ConfigDir, ConfigFile), nil
}

// LoadConfig reads .ribbon/config.yaml from the given directory. A missing
// file is not an error; the defaults are used instead.
func LoadConfig(dir string) (config.Config, string, error) {
	path, err := ConfigPath(dir)
	if err != nil {
		return config.Config{}, "", err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), path, nil
	}
	cfg, err := LoadConfigFromFile(path)
	return cfg, path, err
}

// LoadConfigFromFile reads and validates a specific config file
func LoadConfigFromFile(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return config.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
