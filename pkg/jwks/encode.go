package jwks

import (
	"encoding/base64"
	"fmt"
	"math/big"
)

// encoding is base64url without padding, as required for JOSE fields.
var encoding = base64.RawURLEncoding

// EncodeBigInt encodes a non-negative integer as a JWK field: the minimal
// big-endian byte representation, base64url encoded without padding. Unlike an
// ASN.1 INTEGER, no 0x00 sign byte is prepended when the top bit is set.
// Zero is encoded as a single zero byte.
func EncodeBigInt(v *big.Int) (string, error) {
	if v == nil {
		return "", NewInvalidKeyParameterError("integer parameter is nil")
	}
	if v.Sign() < 0 {
		return "", NewInvalidKeyParameterError(fmt.Sprintf("integer parameter must be non-negative, got %s", v.String()))
	}

	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}

	return encoding.EncodeToString(b), nil
}

// EncodeExponent encodes an RSA public exponent as a JWK field.
func EncodeExponent(e int) (string, error) {
	return EncodeBigInt(big.NewInt(int64(e)))
}

// DecodeBigInt is the inverse of EncodeBigInt.
func DecodeBigInt(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("cannot decode empty string")
	}

	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64url value %q: %w", s, err)
	}

	return new(big.Int).SetBytes(b), nil
}
