package cmpengine

import (
	"errors"
	"fmt"

	"github.com/pthm/cmpengine/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// SealDescription packs desc into a URL-safe token. Sensitive tokens are
// encrypted; others are signed and remain readable.
func SealDescription(enc *Encoder, desc Description, sensitive bool) (string, error) {
	token, err := enc.Encode(desc, sensitive)
	if err != nil {
		return "", fmt.Errorf("cmpengine: seal description: %w", err)
	}
	return token, nil
}

// OpenDescription reverses SealDescription.
func OpenDescription(enc *Encoder, token string) (Description, error) {
	var desc Description
	if err := enc.Decode(token, &desc); err != nil {
		return Description{}, wrapEncodingError(err)
	}
	return desc, nil
}

// wrapEncodingError wraps encoding package errors with cmpengine sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
