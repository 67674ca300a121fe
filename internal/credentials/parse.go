package credentials

import (
	"errors"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

// ErrNoData is returned when the config object has no data at all.
var ErrNoData = errors.New("config has no data")

// ConfigError describes why a credential list could not be read.
type ConfigError struct {
	// Source identifies the config object, as namespace/name.
	Source string
	// Key is the data key that was read.
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("config %s key %q: %v", e.Source, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Parse decodes a YAML (or JSON) list of credentials and checks that every
// entry names a server and that no server appears twice.
func Parse(data []byte) ([]Credential, error) {
	var creds []Credential
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credential list: %w", err)
	}

	seen := make(map[string]int, len(creds))
	for i := range creds {
		creds[i].Server = strings.TrimSpace(creds[i].Server)
		server := creds[i].Server
		if server == "" {
			return nil, fmt.Errorf("credential #%d has no server", i)
		}
		if prev, ok := seen[server]; ok {
			return nil, fmt.Errorf("credential #%d duplicates server %q of credential #%d", i, server, prev)
		}
		seen[server] = i
	}

	return creds, nil
}

// FromSecret reads the credential list stored under key in secret.
func FromSecret(secret *corev1.Secret, key string) ([]Credential, error) {
	source := secret.Namespace + "/" + secret.Name
	if len(secret.Data) == 0 {
		return nil, &ConfigError{Source: source, Err: ErrNoData}
	}

	raw, ok := secret.Data[key]
	if !ok {
		return nil, &ConfigError{Source: source, Key: key, Err: errors.New("key not found")}
	}

	creds, err := Parse(raw)
	if err != nil {
		return nil, &ConfigError{Source: source, Key: key, Err: err}
	}
	return creds, nil
}
