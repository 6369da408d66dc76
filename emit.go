package getsfattr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var errInvalidFileName = errors.New("file name is not valid UTF-8")

// Emitter writes Results to w as one JSON array.
//
// In streaming mode (the default) the opening bracket and each element are
// written as soon as they are available, elements separated by commas. The
// closing bracket is written by Close. A failed Result stops nothing by
// itself: Write returns its error and writes nothing, and the caller is
// expected not to Close, leaving the array open.
//
// In buffered mode nothing reaches w until Close, so a run that fails
// before Close produces no output at all.
//
// Emitter is not safe for concurrent use; it is meant to be the only writer
// of w.
type Emitter struct {
	w        io.Writer
	elem     bytes.Buffer
	out      bytes.Buffer
	enc      *json.Encoder
	count    int
	buffered bool
	closed   bool
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer, buffered bool) *Emitter {
	e := &Emitter{w: w, buffered: buffered}
	e.enc = json.NewEncoder(&e.elem)
	e.enc.SetEscapeHTML(false)
	return e
}

// Count returns the number of elements written so far.
func (e *Emitter) Count() int {
	return e.count
}

// Write appends the success projection of r to the array.
//
// A failed r is returned unchanged as the error.
func (e *Emitter) Write(r Result) error {
	if !r.OK() {
		return r.Err
	}
	if e.closed {
		return errors.New("emitter: write after close")
	}

	e.elem.Reset()
	if e.count == 0 {
		e.elem.WriteByte('[')
	} else {
		e.elem.WriteByte(',')
	}

	if err := e.encode(r); err != nil {
		return &SerializationError{File: r.File, Err: err}
	}
	// json.Encoder terminates every value with a newline.
	e.elem.Truncate(e.elem.Len() - 1)

	if e.buffered {
		e.out.Write(e.elem.Bytes())
	} else if _, err := e.w.Write(e.elem.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", r.File, err)
	}
	e.count++
	return nil
}

func (e *Emitter) encode(r Result) error {
	if !utf8.ValidString(r.File) {
		return errInvalidFileName
	}
	fa := r.FileAttrs()
	if fa.Attrs == nil {
		fa.Attrs = map[string]string{}
	}
	return e.enc.Encode(fa)
}

// Close terminates the array with a closing bracket and a newline, opening
// it first if no element was written. In buffered mode this is the first
// and only write to w.
func (e *Emitter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.count == 0 {
		e.out.WriteByte('[')
	}
	e.out.WriteString("]\n")

	if _, err := e.w.Write(e.out.Bytes()); err != nil {
		return fmt.Errorf("write closing bracket: %w", err)
	}
	e.out.Reset()
	return nil
}
