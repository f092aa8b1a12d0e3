package cmpengine

import "errors"

// Sentinel errors for document and token handling. Building and rendering
// never fail; these only come from decoding input.
var (
	ErrNotFound         = errors.New("cmpengine: component type not found")
	ErrUnknownFormat    = errors.New("cmpengine: unknown document format")
	ErrInvalidDocument  = errors.New("cmpengine: invalid document")
	ErrDecryptFailed    = errors.New("cmpengine: token decryption failed")
	ErrSignatureInvalid = errors.New("cmpengine: token signature verification failed")
	ErrInvalidFormat    = errors.New("cmpengine: invalid token format")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsInvalidInput checks if err was caused by a malformed document or token.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, ErrInvalidDocument) ||
		errors.Is(err, ErrInvalidFormat)
}
