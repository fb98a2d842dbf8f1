package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

var kidOpts struct {
	KeyFile string
	All     bool
}

var kidCmd = &cobra.Command{
	Use:   "kid",
	Short: "Print the key ID of a service account signing key",
	Long: `Print the key ID ("kid") the Kubernetes API server puts in the header
of the service account tokens signed with the key, one per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys, err := loadKeys(cmd.InOrStdin(), kidOpts.KeyFile, kidOpts.All)
		if err != nil {
			return err
		}

		set, err := jwks.BuildFromKeys(keys...)
		if err != nil {
			return err
		}

		for _, kid := range set.KeyIDs() {
			fmt.Fprintln(cmd.OutOrStdout(), kid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kidCmd)
	addKeyFlags(kidCmd, &kidOpts.KeyFile, &kidOpts.All)
}
