package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/vsphere-tmm/irsa-jwks/pkg/exporter"
	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

func resetGenerateOpts(t *testing.T) {
	t.Helper()
	saved := generateOpts
	t.Cleanup(func() { generateOpts = saved })

	generateOpts.KeyFile = ""
	generateOpts.All = false
	generateOpts.OutputFormat = exporter.FormatJSON
	generateOpts.Indent = exporter.DefaultIndent
	generateOpts.OutputFile = ""
	generateOpts.Overwrite = false
	generateOpts.Verify = true
}

func TestRunGenerate(t *testing.T) {
	k := testKeys()

	t.Run("single key to stdout", func(t *testing.T) {
		resetGenerateOpts(t)
		generateOpts.KeyFile = writeKeyFile(t, k[0], k[1])

		stdout, err := runCommand(t, runGenerate, nil)
		require.NoError(t, err)

		want, err := jwks.Build(&k[0].PublicKey)
		require.NoError(t, err)
		var got jwks.Set
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, want, &got)
	})

	t.Run("bundle from stdin", func(t *testing.T) {
		resetGenerateOpts(t)
		generateOpts.KeyFile = "-"
		generateOpts.All = true
		pemBytes, err := os.ReadFile(writeKeyFile(t, k[0], k[1], k[0]))
		require.NoError(t, err)

		stdout, err := runCommand(t, runGenerate, bytes.NewReader(pemBytes))
		require.NoError(t, err)

		var got jwks.Set
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Len(t, got.Keys, 2, "duplicate keys are published once")
	})

	t.Run("yaml", func(t *testing.T) {
		resetGenerateOpts(t)
		generateOpts.KeyFile = writeKeyFile(t, k[1])
		generateOpts.OutputFormat = exporter.FormatYAML

		stdout, err := runCommand(t, runGenerate, nil)
		require.NoError(t, err)

		var got jwks.Set
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
		require.Len(t, got.Keys, 1)
		assert.Equal(t, jwks.AlgRS256, got.Keys[0].Alg)
	})

	t.Run("output file", func(t *testing.T) {
		resetGenerateOpts(t)
		generateOpts.KeyFile = writeKeyFile(t, k[0])
		generateOpts.OutputFile = filepath.Join(t.TempDir(), "openid", "v1", "jwks")
		generateOpts.Indent = 0

		stdout, err := runCommand(t, runGenerate, nil)
		require.NoError(t, err)
		assert.Empty(t, stdout)

		doc, err := os.ReadFile(generateOpts.OutputFile)
		require.NoError(t, err)
		_, err = jwks.Verify(doc, &k[0].PublicKey)
		assert.NoError(t, err)

		_, err = runCommand(t, runGenerate, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is an existing file")

		generateOpts.Overwrite = true
		_, err = runCommand(t, runGenerate, nil)
		assert.NoError(t, err)
	})

	t.Run("nothing is written on failure", func(t *testing.T) {
		resetGenerateOpts(t)
		generateOpts.KeyFile = filepath.Join(t.TempDir(), "missing.pem")
		generateOpts.OutputFile = filepath.Join(t.TempDir(), "jwks.json")

		stdout, err := runCommand(t, runGenerate, nil)
		require.Error(t, err)
		assert.True(t, jwks.IsKeyParseError(err))
		assert.Empty(t, stdout)
		assert.NoFileExists(t, generateOpts.OutputFile)
	})
}

func TestRunKid(t *testing.T) {
	k := testKeys()
	saved := kidOpts
	t.Cleanup(func() { kidOpts = saved })

	kidOpts.KeyFile = writeKeyFile(t, k[0], k[1])
	kidOpts.All = true

	stdout, err := runCommand(t, kidCmd.RunE, nil)
	require.NoError(t, err)

	kid0, err := jwks.KeyID(&k[0].PublicKey)
	require.NoError(t, err)
	kid1, err := jwks.KeyID(&k[1].PublicKey)
	require.NoError(t, err)
	assert.Equal(t, kid0+"\n"+kid1+"\n", stdout)
}
