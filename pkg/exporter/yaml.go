package exporter

import (
	"bytes"
	"context"
	"fmt"

	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
	"github.com/vsphere-tmm/irsa-jwks/pkg/logs"
)

// YAMLExporter is an Exporter that outputs the JWKS document as YAML. Field
// names are the JSON field names; keys within a record are sorted.
type YAMLExporter struct {
}

// NewYAMLExporter creates a new YAMLExporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export writes the document as YAML.
func (e *YAMLExporter) Export(ctx context.Context, set *jwks.Set) (*bytes.Buffer, error) {
	if set == nil {
		return nil, fmt.Errorf("JWKS is nil")
	}

	b, err := yaml.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JWKS to YAML: %w", err)
	}

	klog.FromContext(ctx).WithName("exporter").V(logs.Trace).Info("exported JWKS", "format", FormatYAML, "keys", len(set.Keys), "bytes", len(b))

	return bytes.NewBuffer(b), nil
}

// FileExtension returns the file extension for this exporter's format
func (e *YAMLExporter) FileExtension() string {
	return ".yaml"
}
