package reconciler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/fields"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/internal/watcher"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Manager runs the two watch loops that drive the Reconciler:
//
//   - the namespace loop converges a namespace whenever it becomes active,
//     and all active namespaces on every (re)list
//   - the config loop converges every active namespace whenever the central
//     credential secret changes
//
// The loops share nothing but the API client. Each processes its events one
// at a time; passes from different loops may overlap.
type Manager struct {
	client     client.WithWatch
	reconciler *Reconciler
	options    Options
}

// NewManager creates a Manager for the given client and options.
func NewManager(c client.WithWatch, options Options) *Manager {
	return &Manager{
		client:     c,
		reconciler: NewReconciler(c, options),
		options:    options,
	}
}

// Reconciler returns the reconciler driven by the manager.
func (m *Manager) Reconciler() *Reconciler {
	return m.reconciler
}

// Start runs both watch loops until ctx is cancelled or one of them fails.
// A failure of either loop stops the other one and is returned; a plain
// cancellation returns nil.
func (m *Manager) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return m.WatchNamespaces(gctx)
	})
	g.Go(func() error {
		return m.WatchConfig(gctx)
	})

	logging.Info("Manager", "Started namespace and config watch loops")
	if err := g.Wait(); err != nil {
		logging.Error("Manager", err, "Watch loop failed")
		return err
	}

	logging.Info("Manager", "Watch loops stopped")
	return nil
}

// WatchNamespaces runs the namespace loop until ctx is cancelled or the
// stream fails fatally.
func (m *Manager) WatchNamespaces(ctx context.Context) error {
	stream := watcher.New[*corev1.Namespace](m.client,
		func() client.ObjectList { return &corev1.NamespaceList{} },
		watcher.Config{FieldSelector: activeNamespaceSelector()},
		isActiveNamespace,
	)
	return m.runNamespaceLoop(ctx, stream)
}

// WatchConfig runs the config loop until ctx is cancelled or the stream
// fails fatally.
func (m *Manager) WatchConfig(ctx context.Context) error {
	name := m.options.ConfigName
	stream := watcher.New[*corev1.Secret](m.client,
		func() client.ObjectList { return &corev1.SecretList{} },
		watcher.Config{
			Namespace:     m.options.ConfigNamespace,
			FieldSelector: fields.OneTermEqualSelector("metadata.name", name),
		},
		func(s *corev1.Secret) bool { return s.Name == name },
	)
	return m.runConfigLoop(ctx, stream)
}

// streamError decides what a loop does with an error from its stream:
// transient errors are logged and the loop keeps going, cancellation stops it
// quietly, anything else stops it with a fatal error.
func streamError(ctx context.Context, subsystem string, err error) (stop bool, fatal error) {
	if ctx.Err() != nil {
		return true, nil
	}
	if watcher.IsTransient(err) {
		logging.Warn(subsystem, "Watch error: %v, retrying...", err)
		return false, nil
	}
	return true, fmt.Errorf("%s stream failed: %w", subsystem, err)
}
