package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/vsphere-tmm/irsa-jwks/pkg/logs"
)

// envPrefix is the prefix of the environment variables that can be used in
// place of flags, e.g. IRSA_JWKS_KEY_FILE for --key-file.
const envPrefix = "IRSA_JWKS_"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "irsa-jwks",
	Short: "Publish Kubernetes service account signing keys as a JWKS",
	Long: `irsa-jwks converts the RSA public key that signs Kubernetes service
account tokens into the JSON Web Key Set served by an OIDC issuer, so that
AWS IAM Roles for Service Accounts (or any other OIDC federation) can verify
those tokens.

The key ID of each key is computed exactly as the Kubernetes API server
computes the "kid" header of the tokens it issues.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setFlagsFromEnv(envPrefix, cmd.Flags()); err != nil {
			return err
		}
		return logs.Initialize()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logs.AddFlags(rootCmd.PersistentFlags())

	ctx := klog.NewContext(context.Background(), klog.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	klog.Flush()
}

// setFlagsFromEnv sets every flag not given on the command line from its
// environment variable, if present. Invalid values are reported together.
func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) error {
	var result *multierror.Error
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the commandline
		if set[f.Name] {
			return
		}
		// remove trailing _ to reduce common errors with the prefix, i.e. people setting it to MY_PROG_
		cleanPrefix := strings.TrimSuffix(prefix, "_")
		name := fmt.Sprintf("%s_%s", cleanPrefix, strings.Replace(strings.ToUpper(f.Name), "-", "_", -1))
		if e, ok := os.LookupEnv(name); ok {
			if err := f.Value.Set(e); err != nil {
				result = multierror.Append(result, fmt.Errorf("invalid value %q for %s: %w", e, name, err))
			}
		}
	})
	return result.ErrorOrNil()
}
