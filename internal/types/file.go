// Package types provides the core data structures shared by the collector,
// dispatcher and emitter.
//
// This package defines Result, FileAttrs, the Encoding and Order selectors
// and the typed errors a run can fail with.
package types

// FileAttrs is the JSON projection of a successfully collected file.
type FileAttrs struct {
	FileName string            `json:"file_name"`
	Attrs    map[string]string `json:"attrs"`
}

// Result is the outcome of collecting one file.
//
// Err is nil on success, in which case Attrs holds every attribute that
// survived encoding (never nil). On failure Err is one of ListNamesError,
// GetValueError, NoValueError or SerializationError and Attrs is nil.
type Result struct {
	Attrs map[string]string
	Err   error
	File  string
	// Index is the position of File in the input list.
	Index int
}

// OK reports whether the file was collected successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// FileAttrs returns the success projection of r.
func (r Result) FileAttrs() FileAttrs {
	return FileAttrs{FileName: r.File, Attrs: r.Attrs}
}
