package types

import (
	"strconv"
	"strings"
)

// Encoding selects how raw attribute values are rendered as JSON strings.
//
// Exactly one Encoding applies to every attribute of a run.
type Encoding int

const (
	// EncodingEscaped renders every byte outside printable ASCII as a
	// backslash escape. It is the default.
	EncodingEscaped Encoding = iota // escaped
	// EncodingBase64 renders values with the standard base64 alphabet.
	EncodingBase64 // base64
	// EncodingUTF8 keeps values that are valid UTF-8 and drops the rest.
	EncodingUTF8 // utf8
)

var encodingNames = [...]string{
	EncodingEscaped: "escaped",
	EncodingBase64:  "base64",
	EncodingUTF8:    "utf8",
}

// Encodings lists every supported encoding in declaration order.
func Encodings() []Encoding {
	return []Encoding{EncodingEscaped, EncodingBase64, EncodingUTF8}
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return "Encoding(" + strconv.Itoa(int(e)) + ")"
	}
	return encodingNames[e]
}

// ParseEncoding parses a case-insensitive encoding name.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "utf-8" {
		name = "utf8"
	}
	for i, n := range encodingNames {
		if n == name {
			return Encoding(i), nil
		}
	}
	return EncodingEscaped, &UnknownEncodingError{Value: s}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Set lets Encoding be used as a command-line flag value.
func (e *Encoding) Set(s string) error {
	return e.UnmarshalText([]byte(s))
}

// Type names the flag value type in usage output.
func (e *Encoding) Type() string {
	return "encoding"
}
