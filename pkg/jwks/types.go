package jwks

// Fixed values of every record this package produces.
const (
	KeyTypeRSA = "RSA"
	UseSig     = "sig"
	AlgRS256   = "RS256"
)

// Set is a JSON Web Key Set. Keys is always emitted as an array, even when it
// holds a single key, so that consumers expecting multi-key documents keep
// working.
type Set struct {
	Keys []JWK `json:"keys"`
}

// JWK is a JSON Web Key for an RSA signing key. The field order below is the
// order in which fields are serialized.
type JWK struct {
	// Key type, always "RSA"
	Kty string `json:"kty"`

	// Public key use, always "sig"
	Use string `json:"use"`

	// Algorithm, always "RS256"
	Alg string `json:"alg"`

	// Key ID, base64url(sha256(DER SubjectPublicKeyInfo))
	Kid string `json:"kid"`

	// RSA modulus (base64url encoded, minimal big-endian)
	N string `json:"n"`

	// RSA exponent (base64url encoded, minimal big-endian)
	E string `json:"e"`
}

// KeyIDs returns the kid of every key in the set, in order.
func (s *Set) KeyIDs() []string {
	if s == nil {
		return nil
	}
	kids := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		kids = append(kids, k.Kid)
	}
	return kids
}
