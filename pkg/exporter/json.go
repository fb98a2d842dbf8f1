package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
	"github.com/vsphere-tmm/irsa-jwks/pkg/logs"
)

// JSONExporter is an Exporter that outputs the JWKS document as JSON
type JSONExporter struct {
	// Indent is the number of spaces per indentation level. Zero produces
	// compact output.
	Indent int
}

// NewJSONExporter creates a new JSONExporter
func NewJSONExporter(indent int) *JSONExporter {
	return &JSONExporter{Indent: indent}
}

// Export writes the document as JSON followed by a newline.
func (e *JSONExporter) Export(ctx context.Context, set *jwks.Set) (*bytes.Buffer, error) {
	if set == nil {
		return nil, fmt.Errorf("JWKS is nil")
	}
	if e.Indent < 0 {
		return nil, fmt.Errorf("indent must be non-negative, got %d", e.Indent)
	}

	var (
		b   []byte
		err error
	)
	if e.Indent == 0 {
		b, err = json.Marshal(set)
	} else {
		b, err = json.MarshalIndent(set, "", strings.Repeat(" ", e.Indent))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JWKS to JSON: %w", err)
	}

	klog.FromContext(ctx).WithName("exporter").V(logs.Trace).Info("exported JWKS", "format", FormatJSON, "keys", len(set.Keys), "bytes", len(b)+1)

	buf := bytes.NewBuffer(b)
	buf.WriteByte('\n')
	return buf, nil
}

// FileExtension returns the file extension for this exporter's format
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
