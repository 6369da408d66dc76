package getsfattr

import (
	"github.com/partiallyordered/getsfattr/internal/types"
)

// ListNamesError is an alias to types.ListNamesError.
type ListNamesError = types.ListNamesError

// GetValueError is an alias to types.GetValueError.
type GetValueError = types.GetValueError

// NoValueError is an alias to types.NoValueError.
type NoValueError = types.NoValueError

// SerializationError is an alias to types.SerializationError.
type SerializationError = types.SerializationError

// UnknownEncodingError is an alias to types.UnknownEncodingError.
type UnknownEncodingError = types.UnknownEncodingError

// UnknownOrderError is an alias to types.UnknownOrderError.
type UnknownOrderError = types.UnknownOrderError

// Input validation errors.
var (
	ErrNoFiles       = types.ErrNoFiles
	ErrEmptyFileName = types.ErrEmptyFileName
)

// IsStructural reports whether err is a per-file failure that aborts a run.
func IsStructural(err error) bool {
	return types.IsStructural(err)
}
