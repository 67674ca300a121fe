package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, including a shutdown
	// triggered by SIGINT or SIGTERM.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a fatal watch loop error, invalid settings or
	// invalid arguments.
	ExitCodeError = 1
)

// rootCmd represents the base command for the pullsecret-sync application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pullsecret-sync",
	Short: "Sync registry pull secrets into every namespace",
	Long: `pullsecret-sync reads a list of container registry credentials from a
central Secret and keeps a dockerconfigjson Secret per registry in every
active namespace, referenced from the namespace's service account.

It reacts to new namespaces and to changes of the central Secret.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "pullsecret-sync version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
