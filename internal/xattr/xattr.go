// Package xattr provides access to per-file extended attributes.
//
// Store is the narrow primitive the collector needs: list the attribute
// names of a file and read the raw value of one attribute. OS talks to the
// host filesystem; Memory is a map-backed store used by tests and by
// callers embedding the engine over a virtual filesystem.
package xattr

import (
	"context"
	"errors"
)

// ErrNoValue is returned by Get when the attribute does not exist, for
// example because it was removed after the names were listed.
var ErrNoValue = errors.New("attribute has no value")

// ErrUnsupported is returned by the OS store on platforms without
// extended attribute support.
var ErrUnsupported = errors.New("extended attributes are not supported on this platform")

// Store reads extended attributes.
//
// Implementations must be safe for concurrent use. Names returned by List
// are raw: they may contain bytes that are not valid UTF-8.
type Store interface {
	List(ctx context.Context, path string) ([]string, error)
	Get(ctx context.Context, path, name string) ([]byte, error)
}

// splitNames splits a NUL-separated name list as returned by listxattr(2).
func splitNames(buf []byte) []string {
	var names []string
	start := 0
	for i, b := range buf {
		if b != 0 {
			continue
		}
		if i > start {
			names = append(names, string(buf[start:i]))
		}
		start = i + 1
	}
	if start < len(buf) {
		names = append(names, string(buf[start:]))
	}
	return names
}
