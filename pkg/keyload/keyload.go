// Package keyload reads RSA public keys from PEM data, the form in which
// Kubernetes service account signing keys are usually handed around (sa.pub,
// sa.key, or the bundle passed to --service-account-key-file).
package keyload

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"k8s.io/client-go/util/keyutil"

	"github.com/vsphere-tmm/irsa-jwks/pkg/jwks"
)

// StdinPath is the path that makes the file loaders read from standard input.
const StdinPath = "-"

// LoadPublicKeyFromPEM parses an RSA public key from the first block of
// PEM-encoded bytes. The PEM block should be of type "PUBLIC KEY" or
// "RSA PUBLIC KEY".
func LoadPublicKeyFromPEM(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, jwks.NewKeyParseError("failed to decode PEM block", nil)
	}

	switch block.Type {
	case "PUBLIC KEY":
		pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, jwks.NewKeyParseError("failed to parse PKIX public key", err)
		}

		rsaKey, ok := pubKey.(*rsa.PublicKey)
		if !ok {
			return nil, jwks.NewKeyParseError(fmt.Sprintf("key is not an RSA public key, got %T", pubKey), nil)
		}

		return rsaKey, nil

	case "RSA PUBLIC KEY":
		rsaKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, jwks.NewKeyParseError("failed to parse PKCS1 RSA public key", err)
		}

		return rsaKey, nil
	}

	return nil, jwks.NewKeyParseError(fmt.Sprintf("unsupported PEM block type: %s (expected PUBLIC KEY or RSA PUBLIC KEY)", block.Type), nil)
}

// LoadPublicKeysFromPEM parses every key in a PEM bundle. It accepts the same
// block kinds as the Kubernetes API server does for service account keys:
// public keys, certificates and private keys, of which only the public half is
// kept. Blocks that are not keys are ignored. Any non-RSA key is an error.
func LoadPublicKeysFromPEM(pemBytes []byte) ([]*rsa.PublicKey, error) {
	keys, err := keyutil.ParsePublicKeysPEM(pemBytes)
	if err != nil {
		return nil, jwks.NewKeyParseError("failed to parse PEM bundle", err)
	}

	rsaKeys := make([]*rsa.PublicKey, 0, len(keys))
	for i, key := range keys {
		if _, err := jwks.AlgorithmFor(key); err != nil {
			return nil, jwks.NewKeyParseError(fmt.Sprintf("key %d in bundle", i), err)
		}
		rsaKeys = append(rsaKeys, key.(*rsa.PublicKey))
	}

	return rsaKeys, nil
}

// ReadPEM reads PEM data from path, or from stdin when path is StdinPath.
func ReadPEM(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, jwks.NewKeyParseError("no key file given", nil)
	}

	if path == StdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, jwks.NewKeyParseError("failed to read key", errors.Wrap(err, "reading stdin"))
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, jwks.NewKeyParseError("failed to read PEM file", errors.Wrapf(err, "reading %s", path))
	}

	return b, nil
}
