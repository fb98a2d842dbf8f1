package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2/ktesting"
	"sigs.k8s.io/yaml"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

func TestYAMLExport(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)

	buf, err := NewYAMLExporter().Export(ctx, testSet())
	require.NoError(t, err)

	assert.Equal(t, `keys:
- alg: RS256
  e: AQAB
  kid: kid1
  kty: RSA
  "n": oeq-dk4a
  use: sig
`, buf.String())

	var got jwks.Set
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSet(), &got)
}

func TestYAMLExport_NilSet(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)

	_, err := NewYAMLExporter().Export(ctx, nil)
	assert.EqualError(t, err, "JWKS is nil")
}
