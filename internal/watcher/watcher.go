package watcher

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Watcher turns list+watch calls into a stream of Events.
//
// The first call to Next lists the selected objects and returns them as a
// single EventRestarted. Subsequent calls return one EventApplied or
// EventDeleted per change. A Watcher is not safe for concurrent use; each
// watch loop owns its own.
type Watcher[T client.Object] struct {
	lw      ListerWatcher
	newList func() client.ObjectList
	config  Config
	filter  func(T) bool
	name    string

	// resourceVersion is the last version seen, used to resume watches.
	resourceVersion string

	// needsList is true until the first list and again after a 410 Gone.
	needsList bool

	current watch.Interface
}

// New creates a Watcher. newList must return an empty list of the watched
// kind, for example &corev1.NamespaceList{}. filter, if non-nil, drops
// objects client-side; it should mirror the field selector since not every
// backend honours selectors on watch.
func New[T client.Object](lw ListerWatcher, newList func() client.ObjectList, config Config, filter func(T) bool) *Watcher[T] {
	return &Watcher[T]{
		lw:        lw,
		newList:   newList,
		config:    config,
		filter:    filter,
		name:      fmt.Sprintf("%T", newList()),
		needsList: true,
	}
}

// Next blocks until the next event is available, an error occurs or ctx is
// cancelled.
func (w *Watcher[T]) Next(ctx context.Context) (Event[T], error) {
	for {
		if err := ctx.Err(); err != nil {
			w.Stop()
			return Event[T]{}, err
		}

		if w.needsList {
			return w.relist(ctx)
		}

		if w.current == nil {
			if err := w.startWatch(ctx); err != nil {
				return Event[T]{}, err
			}
		}

		select {
		case <-ctx.Done():
			w.Stop()
			return Event[T]{}, ctx.Err()

		case e, ok := <-w.current.ResultChan():
			if !ok {
				// Server side timeout; resume from the last seen version.
				logging.Debug("Watcher", "Watch on %s closed, resuming from resourceVersion %q", w.name, w.resourceVersion)
				w.current = nil
				continue
			}

			event, emit, err := w.handle(e)
			if err != nil {
				return Event[T]{}, err
			}
			if emit {
				return event, nil
			}
		}
	}
}

// Stop closes the current watch, if any. The next call to Next reopens it.
func (w *Watcher[T]) Stop() {
	if w.current != nil {
		w.current.Stop()
		w.current = nil
	}
}

func (w *Watcher[T]) handle(e watch.Event) (Event[T], bool, error) {
	switch e.Type {
	case watch.Added, watch.Modified, watch.Deleted:
		obj, ok := e.Object.(T)
		if !ok {
			return Event[T]{}, false, &WatchError{Err: fmt.Errorf("unexpected object type %T on %s watch", e.Object, w.name)}
		}
		w.resourceVersion = obj.GetResourceVersion()

		if e.Type == watch.Deleted {
			return Event[T]{Type: EventDeleted, Object: obj}, true, nil
		}
		if w.filter != nil && !w.filter(obj) {
			return Event[T]{}, false, nil
		}
		return Event[T]{Type: EventApplied, Object: obj}, true, nil

	case watch.Bookmark:
		if m, err := meta.Accessor(e.Object); err == nil {
			w.resourceVersion = m.GetResourceVersion()
		}
		return Event[T]{}, false, nil

	case watch.Error:
		w.Stop()
		err := apierrors.FromObject(e.Object)
		if apierrors.IsResourceExpired(err) || apierrors.IsGone(err) {
			w.needsList = true
		}
		return Event[T]{}, false, &WatchError{Err: err}

	default:
		logging.Debug("Watcher", "Ignoring %s event on %s watch", e.Type, w.name)
		return Event[T]{}, false, nil
	}
}

func (w *Watcher[T]) relist(ctx context.Context) (Event[T], error) {
	w.Stop()

	list := w.newList()
	if err := w.lw.List(ctx, list, w.listOptions("")); err != nil {
		return Event[T]{}, &ListError{Err: err}
	}

	items, err := meta.ExtractList(list)
	if err != nil {
		return Event[T]{}, &ListError{Err: err}
	}

	objects := make([]T, 0, len(items))
	for _, item := range items {
		obj, ok := item.(T)
		if !ok {
			return Event[T]{}, &ListError{Err: fmt.Errorf("unexpected object type %T in %s", item, w.name)}
		}
		if w.filter != nil && !w.filter(obj) {
			continue
		}
		objects = append(objects, obj)
	}

	w.resourceVersion = list.GetResourceVersion()
	w.needsList = false

	// Open the watch before handing out the snapshot so nothing that
	// happens while the consumer works on it is missed.
	if err := w.startWatch(ctx); err != nil {
		return Event[T]{}, err
	}

	logging.Debug("Watcher", "Listed %d objects from %s at resourceVersion %q", len(objects), w.name, w.resourceVersion)
	return Event[T]{Type: EventRestarted, Objects: objects}, nil
}

func (w *Watcher[T]) startWatch(ctx context.Context) error {
	wi, err := w.lw.Watch(ctx, w.newList(), w.listOptions(w.resourceVersion))
	if err != nil {
		return &WatchStartError{Err: err}
	}
	w.current = wi
	return nil
}

func (w *Watcher[T]) listOptions(resourceVersion string) *client.ListOptions {
	opts := &client.ListOptions{
		Namespace:     w.config.Namespace,
		FieldSelector: w.config.FieldSelector,
	}
	if resourceVersion != "" {
		opts.Raw = &metav1.ListOptions{
			ResourceVersion:     resourceVersion,
			AllowWatchBookmarks: true,
		}
	}
	return opts
}
