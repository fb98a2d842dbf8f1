package jwks

import (
	"errors"
	"fmt"
)

// ErrorType classifies the failures that can occur while turning a public key
// into a JWKS document.
type ErrorType string

const (
	// ErrorTypeKeyParse indicates that the key input was malformed, unreadable
	// or of an unsupported type.
	ErrorTypeKeyParse ErrorType = "KeyParseError"
	// ErrorTypeEncoding indicates that the key could not be serialized to DER
	// SubjectPublicKeyInfo, or that a record was assembled from empty fields.
	ErrorTypeEncoding ErrorType = "EncodingError"
	// ErrorTypeInvalidKeyParameter indicates a negative or missing integer
	// key parameter.
	ErrorTypeInvalidKeyParameter ErrorType = "InvalidKeyParameterError"
)

// Error is the typed error returned by this package and by the key loaders.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new typed error
func NewError(errType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// NewKeyParseError creates a new KeyParseError
func NewKeyParseError(message string, err error) *Error {
	return NewError(ErrorTypeKeyParse, message, err)
}

// NewEncodingError creates a new EncodingError
func NewEncodingError(message string, err error) *Error {
	return NewError(ErrorTypeEncoding, message, err)
}

// NewInvalidKeyParameterError creates a new InvalidKeyParameterError
func NewInvalidKeyParameterError(message string) *Error {
	return NewError(ErrorTypeInvalidKeyParameter, message, nil)
}

// Is reports whether target is a bare *Error (only Type set) of the same Type,
// so that errors.Is(err, &Error{Type: ErrorTypeEncoding}) finds an encoding
// error anywhere in err's tree, including aggregated errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Type == e.Type
}

// IsKeyParseError reports whether err's tree contains a KeyParseError.
func IsKeyParseError(err error) bool {
	return errors.Is(err, &Error{Type: ErrorTypeKeyParse})
}

// IsEncodingError reports whether err's tree contains an EncodingError.
func IsEncodingError(err error) bool {
	return errors.Is(err, &Error{Type: ErrorTypeEncoding})
}

// IsInvalidKeyParameter reports whether err's tree contains an
// InvalidKeyParameterError.
func IsInvalidKeyParameter(err error) bool {
	return errors.Is(err, &Error{Type: ErrorTypeInvalidKeyParameter})
}
