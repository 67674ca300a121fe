package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/pullsecret-sync/internal/app"
)

// appFlags are the flags shared by commands that talk to the cluster.
type appFlags struct {
	debug      bool
	logFormat  string
	configPath string
	kubeconfig string
	namespace  string
	configName string
}

func (f *appFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format, text or json (overrides the settings file)")
	cmd.Flags().StringVar(&f.configPath, "config-path", "", "Settings file, or a directory containing config.yaml")
	cmd.Flags().StringVar(&f.kubeconfig, "kubeconfig", "", "Path to a kubeconfig (default: in-cluster or $KUBECONFIG)")
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "Namespace of the central credential secret")
	cmd.Flags().StringVar(&f.configName, "config-name", "", "Name of the central credential secret")
}

func (f *appFlags) config() *app.Config {
	cfg := app.NewConfig(f.debug, f.configPath)
	cfg.LogFormat = f.logFormat
	cfg.Kubeconfig = f.kubeconfig
	cfg.ConfigNamespace = f.namespace
	cfg.ConfigName = f.configName
	return cfg
}
