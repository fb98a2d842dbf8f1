package jwks_test

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

func TestKeyID_TestVector(t *testing.T) {
	pub, der := testVector(t)

	kid, err := jwks.KeyID(pub)
	require.NoError(t, err)
	assert.Equal(t, testVectorKid, kid)

	// Independently from the DER bytes as they appear in the PEM file.
	sum := sha256.Sum256(der)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(sum[:]), kid)
}

func TestKeyID_Deterministic(t *testing.T) {
	for _, key := range testKeys() {
		kid1, err := jwks.KeyID(&key.PublicKey)
		require.NoError(t, err)

		// A copy that shares no memory with the original.
		clone := &rsa.PublicKey{N: new(big.Int).Set(key.N), E: key.E}
		kid2, err := jwks.KeyID(clone)
		require.NoError(t, err)

		assert.Equal(t, kid1, kid2)
		assert.Len(t, kid1, 43, "a SHA-256 digest is 43 base64url characters without padding")
		assert.Regexp(t, urlSafeNoPad, kid1)
	}
}

func TestKeyID_DistinctKeys(t *testing.T) {
	keys := testKeys()

	kid1, err := jwks.KeyID(&keys[0].PublicKey)
	require.NoError(t, err)
	kid2, err := jwks.KeyID(&keys[1].PublicKey)
	require.NoError(t, err)

	assert.NotEqual(t, kid1, kid2)
}

func TestKeyID_NilKey(t *testing.T) {
	kid, err := jwks.KeyID(nil)
	require.Error(t, err)
	assert.Empty(t, kid)
	assert.True(t, jwks.IsEncodingError(err))

	kid, err = jwks.KeyID(&rsa.PublicKey{E: 65537})
	require.Error(t, err)
	assert.Empty(t, kid)
	assert.True(t, jwks.IsEncodingError(err))
}
