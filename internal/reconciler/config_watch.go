package reconciler

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/pullsecret-sync/internal/credentials"
	"github.com/giantswarm/pullsecret-sync/internal/watcher"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

const configSubsystem = "ConfigWatch"

func (m *Manager) runConfigLoop(ctx context.Context, stream watcher.Stream[*corev1.Secret]) error {
	defer stream.Stop()
	logging.Info(configSubsystem, "Watching secret %s/%s ...", m.options.ConfigNamespace, m.options.ConfigName)

	for {
		event, err := stream.Next(ctx)
		if err != nil {
			if stop, fatal := streamError(ctx, configSubsystem, err); stop {
				return fatal
			}
			continue
		}

		if event.Type != watcher.EventApplied || event.Object.Name != m.options.ConfigName {
			continue
		}

		creds, err := credentials.FromSecret(event.Object, m.options.ConfigDataKey)
		if err != nil {
			logging.Error(configSubsystem, err, "Config %s applied, but decoding it failed", m.options.ConfigName)
			continue
		}

		namespaces, err := m.reconciler.ListActiveNamespaces(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Error(configSubsystem, err, "Config %s applied, but listing namespaces failed", m.options.ConfigName)
			continue
		}

		summary := m.reconciler.Ensure(ctx, namespaces, creds)
		logging.InfoAttrs(configSubsystem,
			fmt.Sprintf("Config applied, ensure %d credential(s) for %d namespaces finished", len(creds), len(namespaces)),
			summary.Attrs()...)
	}
}
