package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if GetVersion() != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "pullsecret-sync" {
		t.Errorf("Expected Use to be 'pullsecret-sync', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "pullsecret-sync version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})

	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	expected := "pullsecret-sync version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected version output %q, got %q", expected, buf.String())
	}
}

func TestSubcommands(t *testing.T) {
	foundCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range []string{"version", "serve", "plan", "render"} {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestClusterFlags(t *testing.T) {
	flags := []string{"debug", "log-format", "config-path", "kubeconfig", "namespace", "config-name"}

	for _, cmd := range []*cobra.Command{serveCmd, planCmd} {
		for _, name := range flags {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("Expected %s to have flag --%s", cmd.Name(), name)
			}
		}
	}
}

func TestAppFlagsConfig(t *testing.T) {
	f := appFlags{
		debug:      true,
		logFormat:  "json",
		configPath: "/etc/pullsecret-sync",
		kubeconfig: "/tmp/kubeconfig",
		namespace:  "kube-system",
		configName: "registries",
	}

	cfg := f.config()

	if !cfg.Debug || cfg.LogFormat != "json" || cfg.ConfigPath != "/etc/pullsecret-sync" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Kubeconfig != "/tmp/kubeconfig" || cfg.ConfigNamespace != "kube-system" || cfg.ConfigName != "registries" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
