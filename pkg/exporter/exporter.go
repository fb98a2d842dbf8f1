package exporter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

// Exporter serializes a JWKS document to a buffer in a certain format
type Exporter interface {
	Export(ctx context.Context, set *jwks.Set) (*bytes.Buffer, error)
	FileExtension() string
}

const (
	// FormatJSON is the JSON format consumed by OIDC token verifiers
	FormatJSON = "json"
	// FormatYAML is a YAML rendering of the same document, convenient for
	// embedding in Kubernetes manifests or Helm values
	FormatYAML = "yaml"
)

// DefaultIndent is the number of spaces used to indent JSON output.
const DefaultIndent = 2

// Formats lists the supported formats.
var Formats = []string{FormatJSON, FormatYAML}

// NewExporter returns the Exporter for format. indent only applies to JSON.
func NewExporter(format string, indent int) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(indent), nil
	case FormatYAML:
		return NewYAMLExporter(), nil
	default:
		return nil, fmt.Errorf("format %q not supported", format)
	}
}
