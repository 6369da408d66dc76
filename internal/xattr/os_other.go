//go:build !linux && !darwin

package xattr

import (
	"context"
	"io/fs"
)

// OS reports ErrUnsupported for every call on this platform.
type OS struct{}

// NewOS returns a store backed by the host filesystem.
func NewOS() *OS {
	return &OS{}
}

// List always fails with ErrUnsupported.
func (OS) List(ctx context.Context, path string) ([]string, error) {
	return nil, &fs.PathError{Op: "listxattr", Path: path, Err: ErrUnsupported}
}

// Get always fails with ErrUnsupported.
func (OS) Get(ctx context.Context, path, name string) ([]byte, error) {
	return nil, &fs.PathError{Op: "getxattr", Path: path, Err: ErrUnsupported}
}
