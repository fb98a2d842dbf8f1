package cmd

import (
	"crypto/rsa"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vsphere-tmm/irsa-jwks/pkg/keyload"
	"github.com/vsphere-tmm/irsa-jwks/pkg/pathutils"
	"github.com/vsphere-tmm/irsa-jwks/pkg/version"
)

func printVersion(w io.Writer, verbose bool) {
	fmt.Fprintln(w, version.String())
	if verbose {
		fmt.Fprintln(w, "  Commit: ", version.Commit)
		fmt.Fprintln(w, "  Built:  ", version.BuildDate)
		fmt.Fprintln(w, "  Go:     ", runtime.Version())
	}
}

// loadKeys reads the key file (or stdin for "-"). Without all only the first
// PEM block is used and it must be a public key; with all every key in the
// bundle is returned.
func loadKeys(stdin io.Reader, path string, all bool) ([]*rsa.PublicKey, error) {
	pemBytes, err := keyload.ReadPEM(pathutils.ExpandHome(path), stdin)
	if err != nil {
		return nil, err
	}

	if all {
		return keyload.LoadPublicKeysFromPEM(pemBytes)
	}

	key, err := keyload.LoadPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, err
	}
	return []*rsa.PublicKey{key}, nil
}

// addKeyFlags registers the flags shared by every command reading keys.
func addKeyFlags(cmd *cobra.Command, path *string, all *bool) {
	cmd.Flags().StringVarP(
		path,
		"key-file",
		"f",
		"./sa.pem",
		`PEM file holding the service account signing public key, or "-" for stdin.`,
	)
	cmd.Flags().BoolVar(
		all,
		"all",
		false,
		"Read every key in the PEM file (public keys, certificates or private keys, as accepted by --service-account-key-file) instead of only the first public key.",
	)
}
