package reconciler

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/fields"
)

// Outcome is the result of ensuring one credential secret.
type Outcome string

const (
	// OutcomeSkipped means the namespace is outside the credential's scope.
	// Nothing was read or written and the service account is left alone.
	OutcomeSkipped Outcome = "Skipped"

	// OutcomeUnchanged means the secret already held the expected payload.
	OutcomeUnchanged Outcome = "Unchanged"

	// OutcomeCreated means the secret did not exist and was created.
	OutcomeCreated Outcome = "Created"

	// OutcomeUpdated means the secret existed with a different payload and
	// its data key was patched.
	OutcomeUpdated Outcome = "Updated"
)

// Written reports whether the outcome involved a write to the API server.
func (o Outcome) Written() bool {
	return o == OutcomeCreated || o == OutcomeUpdated
}

// Options carries the names the reconciler works with.
type Options struct {
	// ConfigNamespace is the namespace of the central credential secret.
	ConfigNamespace string

	// ConfigName is the name of the central credential secret.
	ConfigName string

	// ConfigDataKey is the data key holding the YAML credential list.
	ConfigDataKey string

	// ServiceAccountName is the service account bound in every namespace.
	ServiceAccountName string

	// EmitEvents records Kubernetes Events for every write and every failed
	// pair.
	EmitEvents bool
}

// activeNamespaceSelector selects namespaces that are not terminating.
func activeNamespaceSelector() fields.Selector {
	return fields.OneTermEqualSelector("status.phase", string(corev1.NamespaceActive))
}

func isActiveNamespace(ns *corev1.Namespace) bool {
	return ns.Status.Phase == corev1.NamespaceActive
}
