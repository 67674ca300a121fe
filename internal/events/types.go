package events

// EventType represents the type/severity of a Kubernetes Event.
type EventType string

const (
	// EventTypeNormal indicates normal, non-problematic events.
	EventTypeNormal EventType = "Normal"

	// EventTypeWarning indicates events that may require attention.
	EventTypeWarning EventType = "Warning"
)

// EventReason represents the reason code for an event.
type EventReason string

const (
	// ReasonPullSecretCreated is recorded on a registry secret that did not
	// exist and was created.
	ReasonPullSecretCreated EventReason = "PullSecretCreated"

	// ReasonPullSecretUpdated is recorded on a registry secret whose payload
	// was replaced.
	ReasonPullSecretUpdated EventReason = "PullSecretUpdated"

	// ReasonPullSecretBound is recorded on a service account that gained an
	// imagePullSecrets reference.
	ReasonPullSecretBound EventReason = "PullSecretBound"

	// ReasonPullSecretSyncFailed is recorded when a registry secret or its
	// binding could not be converged.
	ReasonPullSecretSyncFailed EventReason = "PullSecretSyncFailed"
)

// EventData contains the values substituted into event messages.
type EventData struct {
	// Name of the object the event is recorded on.
	Name      string
	Namespace string

	// Registry is the registry host the secret is for.
	Registry string

	// ServiceAccount is set for binding events.
	ServiceAccount string

	// Error is set for failure events.
	Error string
}

// getEventType returns the appropriate event type for a given reason.
func getEventType(reason EventReason) EventType {
	switch reason {
	case ReasonPullSecretSyncFailed:
		return EventTypeWarning
	default:
		return EventTypeNormal
	}
}
