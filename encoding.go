package getsfattr

import (
	_ "github.com/partiallyordered/getsfattr/internal/encode" // Register encoders
	"github.com/partiallyordered/getsfattr/internal/registry"
	"github.com/partiallyordered/getsfattr/internal/types"
)

// Encoding is an alias to types.Encoding.
type Encoding = types.Encoding

// Re-export all encoding constants.
const (
	EncodingEscaped = types.EncodingEscaped
	EncodingBase64  = types.EncodingBase64
	EncodingUTF8    = types.EncodingUTF8
)

// ParseEncoding parses "escaped", "base64" or "utf8" (case-insensitive).
func ParseEncoding(s string) (Encoding, error) {
	return types.ParseEncoding(s)
}

// Encodings lists every supported encoding.
func Encodings() []Encoding {
	return types.Encodings()
}

// Encode renders raw under enc.
//
// It returns false when the value cannot be represented, in which case the
// attribute is left out of the file's map. It never fails otherwise.
func Encode(raw []byte, enc Encoding) (string, bool) {
	e := registry.Get(enc)
	if e == nil {
		return "", false
	}
	return e.Encode(raw)
}
