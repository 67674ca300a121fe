package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/pullsecret-sync/internal/credentials"
)

var (
	renderServer   string
	renderUsername string
	renderPassword string
	renderBase64   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the .dockerconfigjson payload for a single credential",
	Long: `Prints the payload that serve stores in a registry secret, for checking a
credential by hand. Nothing is read from or written to a cluster.

  pullsecret-sync render --server reg.example.com --username a --password b`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	auth := credentials.NewRegistryAuth(renderUsername, renderPassword, renderServer)

	if renderBase64 {
		encoded, err := auth.Encode()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	}

	payload, err := auth.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderServer, "server", "", "Registry host, e.g. reg.example.com")
	renderCmd.Flags().StringVar(&renderUsername, "username", "", "Registry user")
	renderCmd.Flags().StringVar(&renderPassword, "password", "", "Registry password")
	renderCmd.Flags().BoolVar(&renderBase64, "base64", false, "Print the payload base64 encoded, as stored in the secret")
	_ = renderCmd.MarkFlagRequired("server")
}
