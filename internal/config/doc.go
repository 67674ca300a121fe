// Package config loads the settings of pullsecret-sync.
//
// Settings are read from a single YAML file (config.yaml). Every field has a
// default matching the historical hard-coded values, so running without a
// file is supported:
//
//	configNamespace: default
//	configName: docker-registry-configs
//	configDataKey: registry_secrets
//	serviceAccountName: default
//	logFormat: text
//
// LoadConfig overlays the file on the defaults and validates the result.
// Names are checked with Kubernetes' own DNS-1123 rules so a typo is reported
// at startup instead of as a stream of NotFound errors later.
package config
