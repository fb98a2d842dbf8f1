package jwks

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/lestrrat-go/jwx/v3/jwk"
)

// ErrVerificationFailed is wrapped by every error returned by Verify when the
// document does not publish the expected key.
var ErrVerificationFailed = errors.New("JWKS verification failed")

// base64URLNoPad matches the unpadded URL safe base64 alphabet.
var base64URLNoPad = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// VerifyResult describes a successful verification.
type VerifyResult struct {
	// KeyID is the kid of the matching key.
	KeyID string
	// KeyCount is the number of keys in the document.
	KeyCount int
}

// Verify checks that doc is a JWKS document publishing pub the way this package
// would: a record with the expected kid, fixed kty/use/alg, unpadded base64url
// fields, and a modulus and exponent that decode back to pub. The document is
// parsed independently with jwx so that what a third party verifier would see is
// checked too.
func Verify(doc []byte, pub *rsa.PublicKey) (*VerifyResult, error) {
	kid, err := KeyID(pub)
	if err != nil {
		return nil, err
	}

	var raw Set
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: document is not valid JSON: %v", ErrVerificationFailed, err)
	}

	var record *JWK
	for i := range raw.Keys {
		if raw.Keys[i].Kid == kid {
			record = &raw.Keys[i]
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("%w: no key with kid %q among %d key(s)", ErrVerificationFailed, kid, len(raw.Keys))
	}

	if err := checkRecord(record, pub); err != nil {
		return nil, fmt.Errorf("%w: kid %q: %v", ErrVerificationFailed, kid, err)
	}

	set, err := jwk.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse JWKS document: %v", ErrVerificationFailed, err)
	}

	key, ok := set.LookupKeyID(kid)
	if !ok {
		return nil, fmt.Errorf("%w: kid %q not found by JWKS parser", ErrVerificationFailed, kid)
	}

	var rawKey any
	if err := jwk.Export(key, &rawKey); err != nil {
		return nil, fmt.Errorf("%w: kid %q: failed to export key: %v", ErrVerificationFailed, kid, err)
	}

	published, ok := rawKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: kid %q: expected an RSA public key, got %T", ErrVerificationFailed, kid, rawKey)
	}

	if !published.Equal(pub) {
		return nil, fmt.Errorf("%w: kid %q: published modulus or exponent does not match the key", ErrVerificationFailed, kid)
	}

	return &VerifyResult{
		KeyID:    kid,
		KeyCount: set.Len(),
	}, nil
}

// checkRecord compares the literal record with the one FromPublicKey would
// produce. jwx ignores leading zero bytes in n and e, so a modulus carrying an
// ASN.1 sign byte is only caught here.
func checkRecord(k *JWK, pub *rsa.PublicKey) error {
	if k.Kty != KeyTypeRSA {
		return fmt.Errorf("kty is %q, expected %q", k.Kty, KeyTypeRSA)
	}
	if k.Use != UseSig {
		return fmt.Errorf("use is %q, expected %q", k.Use, UseSig)
	}
	if k.Alg != AlgRS256 {
		return fmt.Errorf("alg is %q, expected %q", k.Alg, AlgRS256)
	}

	if !base64URLNoPad.MatchString(k.N) {
		return fmt.Errorf("n is not unpadded base64url: %q", k.N)
	}
	if !base64URLNoPad.MatchString(k.E) {
		return fmt.Errorf("e is not unpadded base64url: %q", k.E)
	}

	n, err := EncodeBigInt(pub.N)
	if err != nil {
		return err
	}
	if k.N != n {
		return fmt.Errorf("n does not match the minimal encoding of the key's modulus")
	}

	e, err := EncodeExponent(pub.E)
	if err != nil {
		return err
	}
	if k.E != e {
		return fmt.Errorf("e is %q, expected %q", k.E, e)
	}

	return nil
}
