package types

import (
	"errors"
	"fmt"
)

// ErrNoFiles is returned when a run is started without any input files.
var ErrNoFiles = errors.New("at least one file is required")

// ErrEmptyFileName is returned when an input file name is the empty string.
var ErrEmptyFileName = errors.New("file name must not be empty")

// ListNamesError is returned when the attribute names of a file cannot be
// enumerated (missing file, permission denied, unsupported filesystem).
type ListNamesError struct {
	File string
	Err  error
}

func (e *ListNamesError) Error() string {
	return fmt.Sprintf("failed to get extended attributes for file %s: %v", e.File, e.Err)
}

func (e *ListNamesError) Unwrap() error { return e.Err }

// GetValueError is returned when a listed attribute cannot be read.
type GetValueError struct {
	File string
	Name string
	Err  error
}

func (e *GetValueError) Error() string {
	return fmt.Sprintf("failed to get extended attribute %s value for file %s: %v", e.Name, e.File, e.Err)
}

func (e *GetValueError) Unwrap() error { return e.Err }

// NoValueError is returned when an attribute was listed but has no value
// by the time it is read.
type NoValueError struct {
	File string
	Name string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("extended attribute %s does not have a value for file %s", e.Name, e.File)
}

// SerializationError is returned when a file's attributes cannot be
// rendered as JSON.
type SerializationError struct {
	File string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize attributes to JSON for file %s: %v", e.File, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// UnknownEncodingError is returned when parsing an encoding name fails.
type UnknownEncodingError struct {
	Value string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown encoding %q (want escaped, base64 or utf8)", e.Value)
}

// UnknownOrderError is returned when parsing an output order name fails.
type UnknownOrderError struct {
	Value string
}

func (e *UnknownOrderError) Error() string {
	return fmt.Sprintf("unknown order %q (want input or completion)", e.Value)
}

// IsStructural reports whether err is one of the per-file failures that
// abort a run.
func IsStructural(err error) bool {
	var (
		listErr *ListNamesError
		getErr  *GetValueError
		noVal   *NoValueError
		serErr  *SerializationError
	)
	return errors.As(err, &listErr) ||
		errors.As(err, &getErr) ||
		errors.As(err, &noVal) ||
		errors.As(err, &serErr)
}
