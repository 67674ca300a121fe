package reconciler

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/pullsecret-sync/internal/watcher"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

const namespaceSubsystem = "NamespaceWatch"

func (m *Manager) runNamespaceLoop(ctx context.Context, stream watcher.Stream[*corev1.Namespace]) error {
	defer stream.Stop()
	logging.Info(namespaceSubsystem, "Watching all active namespaces ...")

	for {
		event, err := stream.Next(ctx)
		if err != nil {
			if stop, fatal := streamError(ctx, namespaceSubsystem, err); stop {
				return fatal
			}
			continue
		}

		var namespaces []string
		switch event.Type {
		case watcher.EventApplied:
			namespaces = []string{event.Object.Name}
		case watcher.EventRestarted:
			namespaces = make([]string, 0, len(event.Objects))
			for _, ns := range event.Objects {
				namespaces = append(namespaces, ns.Name)
			}
		default:
			continue
		}

		// An unreadable config stops this loop: without it there is nothing
		// to converge towards.
		creds, err := m.reconciler.ReadConfig(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s event for %d namespace(s), but reading config failed: %w", event.Type, len(namespaces), err)
		}

		summary := m.reconciler.Ensure(ctx, namespaces, creds)
		if event.Type == watcher.EventApplied {
			logging.InfoAttrs(namespaceSubsystem, fmt.Sprintf("Namespace %s applied, ensure for it finished", namespaces[0]), summary.Attrs()...)
		} else {
			logging.InfoAttrs(namespaceSubsystem, fmt.Sprintf("Restarted, ensure for %d namespaces finished", len(namespaces)), summary.Attrs()...)
		}
	}
}
