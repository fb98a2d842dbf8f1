// Package jwks turns RSA public keys into JSON Web Key Set documents of the kind
// published by an OIDC issuer for Kubernetes service account token federation
// (for example AWS IAM Roles for Service Accounts).
//
// The key ID is computed the same way the Kubernetes API server computes the
// "kid" header of the service account tokens it signs: the SHA-256 digest of
// the DER encoded SubjectPublicKeyInfo, base64url encoded without padding. A
// token verifier selects the key by that value, so any deviation here breaks
// token validation for every workload relying on the issuer.
//
// Everything in this package is a pure function of its input and safe for
// concurrent use.
package jwks
