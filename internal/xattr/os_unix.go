//go:build linux || darwin

package xattr

import (
	"context"
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// maxRetries bounds the probe/read loop when an attribute keeps growing
// between the size probe and the read.
const maxRetries = 8

// OS reads extended attributes from the host filesystem, following
// symbolic links.
type OS struct{}

// NewOS returns a store backed by the host filesystem.
func NewOS() *OS {
	return &OS{}
}

// List returns the attribute names of path.
func (OS) List(ctx context.Context, path string) ([]string, error) {
	buf, err := readSized(ctx, func(dest []byte) (int, error) {
		return unix.Listxattr(path, dest)
	})
	if err != nil {
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: err}
	}
	return splitNames(buf), nil
}

// Get returns the raw value of attribute name on path. A missing
// attribute is reported as ErrNoValue.
func (OS) Get(ctx context.Context, path, name string) ([]byte, error) {
	buf, err := readSized(ctx, func(dest []byte) (int, error) {
		return unix.Getxattr(path, name, dest)
	})
	if err != nil {
		if errors.Is(err, errNoAttr) {
			return nil, ErrNoValue
		}
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: err}
	}
	return buf, nil
}

// readSized probes the required size with an empty buffer, then reads.
func readSized(ctx context.Context, call func(dest []byte) (int, error)) ([]byte, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size, err := call(nil)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if size == 0 {
			return []byte{}, nil
		}

		buf := make([]byte, size)
		n, err := call(buf)
		switch {
		case err == unix.ERANGE, err == unix.EINTR:
			continue
		case err != nil:
			return nil, err
		}
		return buf[:n], nil
	}
	return nil, unix.ERANGE
}
