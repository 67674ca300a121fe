package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

const configFileName = "config.yaml"

// LoadConfig loads configuration from the given path. The path may point at a
// config.yaml file or at a directory containing one. A missing file yields the
// defaults; an empty path does the same.
func LoadConfig(configPath string) (SyncConfig, error) {
	config := GetDefaultConfig()
	if configPath == "" {
		logging.Info("ConfigLoader", "No config path given, using defaults")
		return config, nil
	}

	configFilePath, err := resolveConfigFile(configPath)
	if err != nil {
		return SyncConfig{}, err
	}

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return SyncConfig{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		// config malformed
		return SyncConfig{}, NewConfigurationError(configFilePath, "parse", err.Error())
	}

	if err := Validate(config); err != nil {
		return SyncConfig{}, NewConfigurationError(configFilePath, "validation", err.Error())
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

func resolveConfigFile(configPath string) (string, error) {
	info, err := os.Stat(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return configPath, nil
		}
		return "", fmt.Errorf("cannot stat config path %s: %w", configPath, err)
	}
	if info.IsDir() {
		return filepath.Join(configPath, configFileName), nil
	}
	return configPath, nil
}
