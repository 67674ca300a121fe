package watcher

import (
	"context"

	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/watch"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// EventType describes what an Event carries.
type EventType string

const (
	// EventApplied means a single object was created or modified.
	EventApplied EventType = "Applied"

	// EventDeleted means a single object was deleted or left the selection.
	EventDeleted EventType = "Deleted"

	// EventRestarted carries a full snapshot that replaces all prior knowledge,
	// produced by the initial list and by every relist.
	EventRestarted EventType = "Restarted"
)

// Event is one element of the stream produced by a Watcher.
type Event[T client.Object] struct {
	Type EventType

	// Object is set for EventApplied and EventDeleted.
	Object T

	// Objects is set for EventRestarted.
	Objects []T
}

// ListerWatcher is the subset of client.WithWatch a Watcher needs.
type ListerWatcher interface {
	List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error
	Watch(ctx context.Context, list client.ObjectList, opts ...client.ListOption) (watch.Interface, error)
}

// Stream is what the watch loops consume. *Watcher implements it.
type Stream[T client.Object] interface {
	Next(ctx context.Context) (Event[T], error)
	Stop()
}

// Config selects the objects a Watcher observes.
type Config struct {
	// Namespace restricts the watch to one namespace. Empty means cluster wide.
	Namespace string

	// FieldSelector is sent to the API server on list and watch.
	FieldSelector fields.Selector
}
