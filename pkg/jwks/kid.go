package jwks

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
)

// KeyID returns the key ID for the given public key, computed the same way as
// the Kubernetes API server does for service account tokens:
//
//	base64url(sha256(DER SubjectPublicKeyInfo))
//
// without padding.
func KeyID(pub *rsa.PublicKey) (string, error) {
	if pub == nil || pub.N == nil {
		return "", NewEncodingError("RSA public key is nil", nil)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", NewEncodingError("failed to serialize public key to DER SubjectPublicKeyInfo", err)
	}

	sum := sha256.Sum256(der)
	return encoding.EncodeToString(sum[:]), nil
}
