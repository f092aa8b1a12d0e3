package cmpengine

import (
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator supplies identifiers for description nodes without an id.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string {
	return f()
}

// RandomIDs returns the default generator: 16 hex characters drawn from a
// random UUID.
func RandomIDs() IDGenerator {
	return IDFunc(func() string {
		u := uuid.New()
		return hex.EncodeToString(u[:8])
	})
}

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
// It is safe for concurrent use and useful for deterministic output.
func SequentialIDs(prefix string) IDGenerator {
	var n atomic.Uint64
	return IDFunc(func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	})
}
