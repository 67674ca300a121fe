package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	kubeclient "github.com/giantswarm/pullsecret-sync/internal/client"
	"github.com/giantswarm/pullsecret-sync/internal/credentials"
	"github.com/giantswarm/pullsecret-sync/internal/watcher"
)

// =============================================================================
// apiRecorder - records API calls going through the fake client
// =============================================================================

// apiRecorder wraps the fake client via interceptor funcs. It records every
// get/create/patch as "Kind namespace/name" and can fail selected calls.
type apiRecorder struct {
	mu sync.Mutex

	gets    []string
	creates []string
	patches []string

	// failGet and failPatch map "Kind namespace/name" to the error to return.
	failGet   map[string]error
	failPatch map[string]error

	// failList makes every List call fail.
	failList error
}

func newAPIRecorder() *apiRecorder {
	return &apiRecorder{
		failGet:   make(map[string]error),
		failPatch: make(map[string]error),
	}
}

func objectID(obj client.Object, namespace, name string) string {
	kind := fmt.Sprintf("%T", obj)
	switch obj.(type) {
	case *corev1.Secret:
		kind = "Secret"
	case *corev1.ServiceAccount:
		kind = "ServiceAccount"
	case *corev1.Namespace:
		kind = "Namespace"
	}
	return fmt.Sprintf("%s %s/%s", kind, namespace, name)
}

func (r *apiRecorder) funcs() interceptor.Funcs {
	return interceptor.Funcs{
		Get: func(ctx context.Context, c client.WithWatch, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
			id := objectID(obj, key.Namespace, key.Name)
			r.mu.Lock()
			r.gets = append(r.gets, id)
			err := r.failGet[id]
			r.mu.Unlock()
			if err != nil {
				return err
			}
			return c.Get(ctx, key, obj, opts...)
		},
		List: func(ctx context.Context, c client.WithWatch, list client.ObjectList, opts ...client.ListOption) error {
			r.mu.Lock()
			err := r.failList
			r.mu.Unlock()
			if err != nil {
				return err
			}
			return c.List(ctx, list, opts...)
		},
		Create: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.CreateOption) error {
			r.mu.Lock()
			r.creates = append(r.creates, objectID(obj, obj.GetNamespace(), obj.GetName()))
			r.mu.Unlock()
			return c.Create(ctx, obj, opts...)
		},
		Patch: func(ctx context.Context, c client.WithWatch, obj client.Object, patch client.Patch, opts ...client.PatchOption) error {
			id := objectID(obj, obj.GetNamespace(), obj.GetName())
			r.mu.Lock()
			r.patches = append(r.patches, id)
			err := r.failPatch[id]
			r.mu.Unlock()
			if err != nil {
				return err
			}
			return c.Patch(ctx, obj, patch, opts...)
		},
	}
}

// writes returns creates and patches in one list.
func (r *apiRecorder) writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.creates)+len(r.patches))
	out = append(out, r.creates...)
	out = append(out, r.patches...)
	return out
}

func (r *apiRecorder) countGets(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, g := range r.gets {
		if g == id {
			n++
		}
	}
	return n
}

func (r *apiRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets, r.creates, r.patches = nil, nil, nil
}

// newTestClient builds a fake client that understands the status.phase
// field selector on namespaces and routes calls through rec.
func newTestClient(rec *apiRecorder, objs ...client.Object) client.WithWatch {
	return fake.NewClientBuilder().
		WithScheme(kubeclient.NewScheme()).
		WithObjects(objs...).
		WithIndex(&corev1.Namespace{}, "status.phase", func(o client.Object) []string {
			return []string{string(o.(*corev1.Namespace).Status.Phase)}
		}).
		WithInterceptorFuncs(rec.funcs()).
		Build()
}

var testOptions = Options{
	ConfigNamespace:    "default",
	ConfigName:         "docker-registry-configs",
	ConfigDataKey:      "registry_secrets",
	ServiceAccountName: "default",
}

// =============================================================================
// object builders
// =============================================================================

func testNamespace(name string, phase corev1.NamespacePhase) *corev1.Namespace {
	return &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Status:     corev1.NamespaceStatus{Phase: phase},
	}
}

func testServiceAccount(ns string, pullSecrets ...string) *corev1.ServiceAccount {
	sa := &corev1.ServiceAccount{
		ObjectMeta: metav1.ObjectMeta{Name: "default", Namespace: ns},
	}
	for _, s := range pullSecrets {
		sa.ImagePullSecrets = append(sa.ImagePullSecrets, corev1.LocalObjectReference{Name: s})
	}
	return sa
}

func testConfigSecret(list string) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: testOptions.ConfigName, Namespace: testOptions.ConfigNamespace},
		Data: map[string][]byte{
			testOptions.ConfigDataKey: []byte(list),
		},
	}
}

// namespaceWithAccount returns an active namespace plus its default
// service account.
func namespaceWithAccount(name string) []client.Object {
	return []client.Object{testNamespace(name, corev1.NamespaceActive), testServiceAccount(name)}
}

func getSecret(t *testing.T, c client.Client, ns, name string) *corev1.Secret {
	t.Helper()
	s := &corev1.Secret{}
	if err := c.Get(context.Background(), client.ObjectKey{Namespace: ns, Name: name}, s); err != nil {
		t.Fatalf("get secret %s/%s: %v", ns, name, err)
	}
	return s
}

func getServiceAccount(t *testing.T, c client.Client, ns string) *corev1.ServiceAccount {
	t.Helper()
	sa := &corev1.ServiceAccount{}
	if err := c.Get(context.Background(), client.ObjectKey{Namespace: ns, Name: "default"}, sa); err != nil {
		t.Fatalf("get serviceaccount %s/default: %v", ns, err)
	}
	return sa
}

func pullSecretNames(sa *corev1.ServiceAccount) []string {
	names := make([]string, 0, len(sa.ImagePullSecrets))
	for _, ref := range sa.ImagePullSecrets {
		names = append(names, ref.Name)
	}
	return names
}

func expectedPayload(t *testing.T, user, pass, host string) []byte {
	t.Helper()
	data, err := credentials.NewRegistryAuth(user, pass, host).Marshal()
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return data
}

// =============================================================================
// scriptedStream - a watcher.Stream replaying a fixed sequence
// =============================================================================

// errEndOfScript is returned once a scriptedStream runs out of steps. It is
// not transient, so loops return it.
var errEndOfScript = errors.New("end of script")

type streamStep[T client.Object] struct {
	event watcher.Event[T]
	err   error
	// before runs right before the step is returned, e.g. to mutate the
	// cluster between events.
	before func()
}

type scriptedStream[T client.Object] struct {
	steps   []streamStep[T]
	stopped bool
}

func (s *scriptedStream[T]) Next(ctx context.Context) (watcher.Event[T], error) {
	if err := ctx.Err(); err != nil {
		return watcher.Event[T]{}, err
	}
	if len(s.steps) == 0 {
		return watcher.Event[T]{}, errEndOfScript
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	if step.before != nil {
		step.before()
	}
	return step.event, step.err
}

func (s *scriptedStream[T]) Stop() {
	s.stopped = true
}

func applied[T client.Object](obj T) streamStep[T] {
	return streamStep[T]{event: watcher.Event[T]{Type: watcher.EventApplied, Object: obj}}
}

func deleted[T client.Object](obj T) streamStep[T] {
	return streamStep[T]{event: watcher.Event[T]{Type: watcher.EventDeleted, Object: obj}}
}

func restarted[T client.Object](objs ...T) streamStep[T] {
	return streamStep[T]{event: watcher.Event[T]{Type: watcher.EventRestarted, Objects: objs}}
}

func failing[T client.Object](err error) streamStep[T] {
	return streamStep[T]{err: err}
}
