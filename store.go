package getsfattr

import (
	"github.com/partiallyordered/getsfattr/internal/xattr"
)

// MemoryStore is an alias to xattr.Memory, an in-memory Store.
type MemoryStore = xattr.Memory

// Attribute store errors.
var (
	ErrNoValue     = xattr.ErrNoValue
	ErrUnsupported = xattr.ErrUnsupported
)

// NewOSStore returns the Store backed by the host filesystem. It is the
// default store.
func NewOSStore() Store {
	return xattr.NewOS()
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return xattr.NewMemory()
}
