package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
	"github.com/vsphere-tmm/irsa-jwks/pkg/pathutils"
)

var verifyOpts struct {
	KeyFile  string
	All      bool
	JWKSFile string
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a JWKS document publishes a service account signing key",
	Long: `Verify checks that a published (or about to be published) JWKS document
contains each key with the expected key ID, and that the modulus and exponent
in the document are those of the key. JSON and YAML documents are accepted.`,
	Example: `  curl -s https://issuer.example.com/openid/v1/jwks > jwks.json
  irsa-jwks verify --key-file sa.pub --jwks-file jwks.json`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addKeyFlags(verifyCmd, &verifyOpts.KeyFile, &verifyOpts.All)
	verifyCmd.Flags().StringVar(
		&verifyOpts.JWKSFile,
		"jwks-file",
		"",
		"JWKS document to check (required).",
	)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	if verifyOpts.JWKSFile == "" {
		return fmt.Errorf("--jwks-file is required")
	}

	keys, err := loadKeys(cmd.InOrStdin(), verifyOpts.KeyFile, verifyOpts.All)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(pathutils.ExpandHome(verifyOpts.JWKSFile))
	if err != nil {
		return fmt.Errorf("failed to read JWKS file: %w", err)
	}

	doc, err := documentJSON(raw)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var result *multierror.Error
	for _, key := range keys {
		res, err := jwks.Verify(doc, key)
		if err != nil {
			kid, _ := jwks.KeyID(key)
			color.New(color.FgRed).Fprintf(w, "FAIL %s\n", kid)
			result = multierror.Append(result, err)
			continue
		}
		color.New(color.FgGreen).Fprintf(w, "OK   %s (%d key(s) in document)\n", res.KeyID, res.KeyCount)
	}

	return result.ErrorOrNil()
}

// documentJSON converts a JSON or YAML document to JSON.
func documentJSON(doc []byte) ([]byte, error) {
	j, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("JWKS document is neither JSON nor YAML: %w", err)
	}
	return j, nil
}
