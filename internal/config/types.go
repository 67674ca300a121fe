package config

// SyncConfig is the top-level configuration structure for pullsecret-sync.
//
// Every field has a default (see GetDefaultConfig), so an absent or partial
// config.yaml is valid.
type SyncConfig struct {
	// ConfigNamespace is the namespace holding the central credential secret.
	ConfigNamespace string `yaml:"configNamespace,omitempty"`

	// ConfigName is the name of the central credential secret.
	ConfigName string `yaml:"configName,omitempty"`

	// ConfigDataKey is the data key whose value is the YAML credential list.
	ConfigDataKey string `yaml:"configDataKey,omitempty"`

	// ServiceAccountName is the service account that receives the pull-secret
	// references in every target namespace.
	ServiceAccountName string `yaml:"serviceAccountName,omitempty"`

	// LogFormat is either "text" or "json".
	LogFormat string `yaml:"logFormat,omitempty"`

	// EmitEvents records Kubernetes Events on changed secrets and service
	// accounts. Needs create permission on events.
	EmitEvents bool `yaml:"emitEvents"`
}
