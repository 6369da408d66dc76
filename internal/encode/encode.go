// Package encode implements the attribute value encoders and registers
// them with the encoder registry.
package encode

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/partiallyordered/getsfattr/internal/registry"
	"github.com/partiallyordered/getsfattr/internal/types"
)

func init() {
	registry.Register(types.EncodingEscaped, registry.EncoderFunc(Escaped))
	registry.Register(types.EncodingBase64, registry.EncoderFunc(Base64))
	registry.Register(types.EncodingUTF8, registry.EncoderFunc(UTF8))
}

// UTF8 returns raw as a string if it is valid UTF-8.
func UTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// Base64 returns the standard, padded base64 encoding of raw.
func Base64(raw []byte) (string, bool) {
	return base64.StdEncoding.EncodeToString(raw), true
}

// Escaped returns raw with every byte outside printable ASCII escaped.
//
// The escaped form is always ASCII; the UTF-8 check only guards against a
// broken escaper.
func Escaped(raw []byte) (string, bool) {
	s := string(AppendEscaped(make([]byte, 0, len(raw)), raw))
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}
