package jwks

import (
	"crypto/rsa"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// AlgorithmFor returns the JWS algorithm advertised for the given key. Only RSA
// keys are supported, and they are always published as RS256 since that is the
// only algorithm the Kubernetes API server signs service account tokens with
// for RSA keys. Support for other key types would extend this switch.
func AlgorithmFor(pub any) (string, error) {
	switch k := pub.(type) {
	case *rsa.PublicKey:
		if k == nil {
			return "", NewEncodingError("RSA public key is nil", nil)
		}
		return AlgRS256, nil
	default:
		return "", NewKeyParseError(fmt.Sprintf("unsupported key type %T, only RSA public keys are supported", pub), nil)
	}
}

// NewJWK assembles an RSA signing JWK from an already computed key ID and
// already encoded modulus and exponent.
func NewJWK(kid, n, e string) (JWK, error) {
	if kid == "" {
		return JWK{}, NewEncodingError("kid cannot be empty", nil)
	}
	if n == "" {
		return JWK{}, NewEncodingError("modulus cannot be empty", nil)
	}
	if e == "" {
		return JWK{}, NewEncodingError("exponent cannot be empty", nil)
	}

	return JWK{
		Kty: KeyTypeRSA,
		Use: UseSig,
		Alg: AlgRS256,
		Kid: kid,
		N:   n,
		E:   e,
	}, nil
}

// FromPublicKey builds the JWK for an RSA public key.
func FromPublicKey(pub *rsa.PublicKey) (JWK, error) {
	if pub == nil {
		return JWK{}, NewEncodingError("RSA public key is nil", nil)
	}
	if pub.N == nil {
		return JWK{}, NewInvalidKeyParameterError("RSA modulus is nil")
	}

	n, err := EncodeBigInt(pub.N)
	if err != nil {
		return JWK{}, fmt.Errorf("failed to encode modulus: %w", err)
	}

	e, err := EncodeExponent(pub.E)
	if err != nil {
		return JWK{}, fmt.Errorf("failed to encode exponent: %w", err)
	}

	kid, err := KeyID(pub)
	if err != nil {
		return JWK{}, err
	}

	return NewJWK(kid, n, e)
}

// NewSet wraps the given keys in a JWKS document. The slice is copied.
func NewSet(keys ...JWK) *Set {
	s := &Set{Keys: make([]JWK, len(keys))}
	copy(s.Keys, keys)
	return s
}

// Build returns the single-key JWKS document for pub.
func Build(pub *rsa.PublicKey) (*Set, error) {
	key, err := FromPublicKey(pub)
	if err != nil {
		return nil, err
	}

	return NewSet(key), nil
}

// BuildFromKeys returns a JWKS document with one key per distinct public key,
// in input order. Keys with the same kid appear once. Every failing key is
// reported in the returned error, in which case no document is returned.
func BuildFromKeys(pubs ...*rsa.PublicKey) (*Set, error) {
	if len(pubs) == 0 {
		return nil, NewKeyParseError("no RSA public keys supplied", nil)
	}

	var result *multierror.Error
	seen := make(map[string]bool, len(pubs))
	keys := make([]JWK, 0, len(pubs))

	for i, pub := range pubs {
		key, err := FromPublicKey(pub)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("key %d: %w", i, err))
			continue
		}
		if seen[key.Kid] {
			continue
		}
		seen[key.Kid] = true
		keys = append(keys, key)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return NewSet(keys...), nil
}
