package jwks_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testVectorPEM is a fixed 2048-bit RSA public key (PKIX) with e=65537. Its
// modulus starts with 0xa1, so the DER INTEGER carries a 0x00 sign byte that
// must not show up in the JWK.
const testVectorPEM = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAoeq+dk4aoGdV9xjrnGJt
VbUh5jvkQgynkP+9Ph2NVeoasXWqYOmOVeKOI7Yr58W/L8Mro6C22iSEJrPFgPF6
t+RJsLAsAY6w1Pocq16COeelAWtxhHQGXt77WQKk0kmwhOJZ4VSeiQC4hWLUnq4N
Ft7lwLw/50opTXLuSErrwec/bEV7G/Xp11BMsHGEL7dzpwWAfIrbCEomyWrO/L6p
O3SAgYMdfup5ddnszeCU2FbFQziOkuMLOyir91XXk8wgdSy4IGAEGpwNx88i8fuj
Qafze2aGWUtpWlOEQPP8lH2cj2TGUgLxGITbczJRcwuGIoJBOzAmPDWi/bapj4b6
zQIDAQAB
-----END PUBLIC KEY-----`

// Expected values for testVectorPEM, computed outside of Go from the DER bytes.
const (
	testVectorKid = "LXz312qK4UnNizA9v6xc6ckMpGB5kFez4TsAdDHHPpY"
	testVectorN   = "oeq-dk4aoGdV9xjrnGJtVbUh5jvkQgynkP-9Ph2NVeoasXWqYOmOVeKOI7Yr58W_L8Mro6C22iSEJrPFgPF6t-RJsLAsAY6w1Pocq16COeelAWtxhHQGXt77WQKk0kmwhOJZ4VSeiQC4hWLUnq4NFt7lwLw_50opTXLuSErrwec_bEV7G_Xp11BMsHGEL7dzpwWAfIrbCEomyWrO_L6pO3SAgYMdfup5ddnszeCU2FbFQziOkuMLOyir91XXk8wgdSy4IGAEGpwNx88i8fujQafze2aGWUtpWlOEQPP8lH2cj2TGUgLxGITbczJRcwuGIoJBOzAmPDWi_bapj4b6zQ"
	testVectorE   = "AQAB"
)

// testVector returns the parsed test vector key and its DER SubjectPublicKeyInfo.
func testVector(t *testing.T) (*rsa.PublicKey, []byte) {
	t.Helper()

	block, _ := pem.Decode([]byte(testVectorPEM))
	require.NotNil(t, block, "failed to decode PEM block")

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)

	rsaPub, ok := pub.(*rsa.PublicKey)
	require.True(t, ok, "key should be an RSA public key")

	return rsaPub, block.Bytes
}

var (
	testKeysOnce     sync.Once
	internalTestKeys []*rsa.PrivateKey
)

// testKeys generates and returns two singleton RSA private keys for testing
// purposes, to avoid needing to generate new keys for each test.
func testKeys() []*rsa.PrivateKey {
	testKeysOnce.Do(func() {
		for range 2 {
			key, err := rsa.GenerateKey(rand.Reader, 2048)
			if err != nil {
				panic("failed to generate test RSA key: " + err.Error())
			}
			internalTestKeys = append(internalTestKeys, key)
		}
	})

	return internalTestKeys
}
