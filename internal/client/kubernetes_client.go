package client

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// NewScheme returns a scheme with the built-in Kubernetes types registered.
// Namespaces, Secrets and ServiceAccounts are all we touch.
func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	return scheme
}

// GetRestConfig resolves the Kubernetes REST configuration.
//
// An explicit kubeconfig path wins. Otherwise controller-runtime's lookup is
// used: the --kubeconfig flag, $KUBECONFIG, the in-cluster service account
// and finally ~/.kube/config.
func GetRestConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig != "" {
		cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig %s: %w", kubeconfig, err)
		}
		return cfg, nil
	}

	cfg, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get Kubernetes config: %w", err)
	}
	return cfg, nil
}

// NewKubernetesClient creates an uncached controller-runtime client that can
// also open watches.
//
// The client is deliberately uncached: every convergence pass reads the
// current state from the API server.
func NewKubernetesClient(config *rest.Config) (client.WithWatch, error) {
	k8sClient, err := client.NewWithWatch(config, client.Options{
		Scheme: NewScheme(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
	}
	return k8sClient, nil
}
