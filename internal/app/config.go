package app

import (
	"io"

	"github.com/giantswarm/pullsecret-sync/internal/config"
	"github.com/giantswarm/pullsecret-sync/internal/reconciler"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// LogFormat overrides the settings file when set ("text" or "json").
	LogFormat string

	// Custom configuration path (optional)
	ConfigPath string

	// Kubeconfig is an explicit kubeconfig path. Empty means in-cluster or
	// the usual lookup.
	Kubeconfig string

	// ConfigNamespace and ConfigName override the location of the central
	// credential secret.
	ConfigNamespace string
	ConfigName      string

	// LogOutput receives log output. Defaults to stdout.
	LogOutput io.Writer
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// LoadSettings loads the settings file and applies the command line
// overrides on top of it.
func LoadSettings(cfg *Config) (config.SyncConfig, error) {
	settings, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return config.SyncConfig{}, err
	}

	if cfg.ConfigNamespace != "" {
		settings.ConfigNamespace = cfg.ConfigNamespace
	}
	if cfg.ConfigName != "" {
		settings.ConfigName = cfg.ConfigName
	}
	if cfg.LogFormat != "" {
		settings.LogFormat = cfg.LogFormat
	}

	if err := config.Validate(settings); err != nil {
		return config.SyncConfig{}, config.NewConfigurationError("command line", "validation", err.Error())
	}
	return settings, nil
}

// ReconcilerOptions maps settings onto the reconciler's options.
func ReconcilerOptions(settings config.SyncConfig) reconciler.Options {
	return reconciler.Options{
		ConfigNamespace:    settings.ConfigNamespace,
		ConfigName:         settings.ConfigName,
		ConfigDataKey:      settings.ConfigDataKey,
		ServiceAccountName: settings.ServiceAccountName,
		EmitEvents:         settings.EmitEvents,
	}
}
