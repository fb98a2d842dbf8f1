package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/vsphere-tmm/irsa-jwks/pkg/exporter"
	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
	"github.com/vsphere-tmm/irsa-jwks/pkg/logs"
	"github.com/vsphere-tmm/irsa-jwks/pkg/output"
	"github.com/vsphere-tmm/irsa-jwks/pkg/pathutils"
)

var generateOpts struct {
	KeyFile      string
	All          bool
	OutputFormat string
	Indent       int
	OutputFile   string
	Overwrite    bool
	Verify       bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the JWKS document for a service account signing key",
	Long: `Generate reads the service account signing public key and prints the
JSON Web Key Set to publish at the OIDC issuer's jwks_uri.

Nothing is written unless the whole document could be built.`,
	Example: `  irsa-jwks generate --key-file sa.pub > keys.json
  irsa-jwks generate --key-file sa.pub --output-file public/openid/v1/jwks --overwrite`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addKeyFlags(generateCmd, &generateOpts.KeyFile, &generateOpts.All)
	generateCmd.Flags().StringVarP(
		&generateOpts.OutputFormat,
		"output-format",
		"o",
		exporter.FormatJSON,
		fmt.Sprintf("Output format, one of: %s.", strings.Join(exporter.Formats, ", ")),
	)
	generateCmd.Flags().IntVar(
		&generateOpts.Indent,
		"indent",
		exporter.DefaultIndent,
		"Number of spaces to indent JSON output with, 0 for compact output.",
	)
	generateCmd.Flags().StringVar(
		&generateOpts.OutputFile,
		"output-file",
		"",
		"Write the document to this file instead of stdout.",
	)
	generateCmd.Flags().BoolVar(
		&generateOpts.Overwrite,
		"overwrite",
		false,
		"Replace --output-file if it already exists.",
	)
	generateCmd.Flags().BoolVar(
		&generateOpts.Verify,
		"verify",
		false,
		"Parse the serialized document back and check that it publishes every input key before writing it.",
	)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := klog.FromContext(ctx).WithName("generate")

	keys, err := loadKeys(cmd.InOrStdin(), generateOpts.KeyFile, generateOpts.All)
	if err != nil {
		return err
	}
	log.V(logs.Debug).Info("Loaded keys", "path", generateOpts.KeyFile, "count", len(keys))

	set, err := jwks.BuildFromKeys(keys...)
	if err != nil {
		return fmt.Errorf("failed to build JWKS: %w", err)
	}
	log.V(logs.Debug).Info("Built JWKS", "kids", set.KeyIDs())

	exp, err := exporter.NewExporter(generateOpts.OutputFormat, generateOpts.Indent)
	if err != nil {
		return err
	}

	buf, err := exp.Export(ctx, set)
	if err != nil {
		return err
	}

	if generateOpts.Verify {
		doc, err := documentJSON(buf.Bytes())
		if err != nil {
			return err
		}
		for _, key := range keys {
			result, err := jwks.Verify(doc, key)
			if err != nil {
				return err
			}
			log.V(logs.Debug).Info("Verified key", "kid", result.KeyID)
		}
	}

	out, err := output.NewOutput(&output.Config{
		Path:      pathutils.ExpandHome(generateOpts.OutputFile),
		Overwrite: generateOpts.Overwrite,
		Stdout:    cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	return out.Write(ctx, buf)
}
