package config

const (
	// DefaultConfigNamespace is where the central credential secret lives.
	DefaultConfigNamespace = "default"

	// DefaultConfigName is the name of the central credential secret.
	DefaultConfigName = "docker-registry-configs"

	// DefaultConfigDataKey holds the YAML encoded credential list.
	DefaultConfigDataKey = "registry_secrets"

	// DefaultServiceAccountName is patched in every namespace.
	DefaultServiceAccountName = "default"

	// DefaultLogFormat is used unless overridden.
	DefaultLogFormat = "text"

	// DefaultEmitEvents enables Kubernetes Events.
	DefaultEmitEvents = true
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() SyncConfig {
	return SyncConfig{
		ConfigNamespace:    DefaultConfigNamespace,
		ConfigName:         DefaultConfigName,
		ConfigDataKey:      DefaultConfigDataKey,
		ServiceAccountName: DefaultServiceAccountName,
		LogFormat:          DefaultLogFormat,
		EmitEvents:         DefaultEmitEvents,
	}
}
