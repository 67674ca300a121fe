package events

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Component is reported as the event source.
const Component = "pullsecret-sync"

// EventGenerator records Kubernetes Events on the objects the reconciler
// changes, so `kubectl get events` shows what was synced.
type EventGenerator struct {
	client    client.Client
	templates *MessageTemplateEngine
}

// NewEventGenerator creates a new EventGenerator writing through c.
func NewEventGenerator(c client.Client) *EventGenerator {
	return &EventGenerator{
		client:    c,
		templates: NewMessageTemplateEngine(),
	}
}

// SecretEvent records an event on a registry secret.
func (g *EventGenerator) SecretEvent(ctx context.Context, secret *corev1.Secret, reason EventReason, data EventData) error {
	data.Name = secret.Name
	data.Namespace = secret.Namespace
	if data.Registry == "" {
		data.Registry = secret.Name
	}
	return g.emit(ctx, secret, reason, data)
}

// ServiceAccountEvent records an event on a service account.
func (g *EventGenerator) ServiceAccountEvent(ctx context.Context, sa *corev1.ServiceAccount, reason EventReason, data EventData) error {
	data.Name = sa.Name
	data.Namespace = sa.Namespace
	data.ServiceAccount = sa.Name
	return g.emit(ctx, sa, reason, data)
}

func (g *EventGenerator) emit(ctx context.Context, obj client.Object, reason EventReason, data EventData) error {
	message := g.templates.Render(reason, data)
	eventType := string(getEventType(reason))

	logging.Debug("Events", "Generating event: reason=%s, message=%s, type=%s", reason, message, eventType)

	gvk, err := g.client.GroupVersionKindFor(obj)
	if err != nil {
		return fmt.Errorf("failed to get GroupVersionKind for object: %w", err)
	}

	now := metav1.NewTime(time.Now())
	event := &corev1.Event{
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: obj.GetName() + "-",
			Namespace:    obj.GetNamespace(),
		},
		InvolvedObject: corev1.ObjectReference{
			APIVersion:      gvk.GroupVersion().String(),
			Kind:            gvk.Kind,
			Name:            obj.GetName(),
			Namespace:       obj.GetNamespace(),
			UID:             obj.GetUID(),
			ResourceVersion: obj.GetResourceVersion(),
		},
		Reason:         string(reason),
		Message:        message,
		Type:           eventType,
		Source:         corev1.EventSource{Component: Component},
		FirstTimestamp: now,
		LastTimestamp:  now,
		Count:          1,
	}

	if err := g.client.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create Kubernetes Event: %w", err)
	}
	return nil
}

// SetTemplate allows customizing the message template for a specific event reason.
func (g *EventGenerator) SetTemplate(reason EventReason, template string) {
	g.templates.SetTemplate(reason, template)
}
