package cmd

import (
	"github.com/spf13/cobra"
)

var versionOpts struct {
	Verbose bool
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the irsa-jwks version",
	Long: `Print the irsa-jwks version, and with --verbose the commit, build date
and Go version it was built with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printVersion(cmd.OutOrStdout(), versionOpts.Verbose)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(
		&versionOpts.Verbose,
		"verbose",
		false,
		"Also print the commit, build date and Go version.",
	)
}
