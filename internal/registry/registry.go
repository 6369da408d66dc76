// Package registry maps attribute value encodings to their encoders.
package registry

import (
	"sync"

	"github.com/partiallyordered/getsfattr/internal/types"
)

// Encoder renders a raw attribute value as a string.
type Encoder interface {
	// Encode returns the rendered value, or false if the value cannot be
	// represented under this encoding.
	Encode(raw []byte) (string, bool)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(raw []byte) (string, bool)

// Encode calls f(raw).
func (f EncoderFunc) Encode(raw []byte) (string, bool) {
	return f(raw)
}

var (
	mu       sync.RWMutex
	encoders = make(map[types.Encoding]Encoder)
)

// Register registers an encoder for an encoding.
// This is called by encoder packages during initialization (init functions).
func Register(enc types.Encoding, e Encoder) {
	mu.Lock()
	defer mu.Unlock()
	encoders[enc] = e
}

// Get returns the encoder for a given encoding.
// Returns nil if no encoder is registered for the encoding.
func Get(enc types.Encoding) Encoder {
	mu.RLock()
	defer mu.RUnlock()
	return encoders[enc]
}
