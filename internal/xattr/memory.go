package xattr

import (
	"context"
	"io/fs"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Store.
//
// Files must be created with AddFile (or implicitly by Set) before they
// can be listed; listing an unknown file fails with fs.ErrNotExist.
type Memory struct {
	mu      sync.RWMutex
	files   map[string]*memFile
	delay   time.Duration
	delayed map[string]time.Duration
}

type memFile struct {
	attrs    map[string][]byte
	noValue  map[string]bool
	getErrs  map[string]error
	listErr  error
	extraRaw []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		files:   make(map[string]*memFile),
		delayed: make(map[string]time.Duration),
	}
}

func (m *Memory) file(path string) *memFile {
	f, ok := m.files[path]
	if !ok {
		f = &memFile{
			attrs:   make(map[string][]byte),
			noValue: make(map[string]bool),
			getErrs: make(map[string]error),
		}
		m.files[path] = f
	}
	return f
}

// AddFile creates path with no attributes.
func (m *Memory) AddFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.file(path)
}

// Set stores an attribute value, creating the file if needed.
func (m *Memory) Set(path, name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.file(path)
	f.attrs[name] = append([]byte(nil), value...)
	delete(f.noValue, name)
}

// SetNoValue makes name appear in the listing of path while Get reports
// ErrNoValue for it.
func (m *Memory) SetNoValue(path, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.file(path)
	delete(f.attrs, name)
	f.noValue[name] = true
}

// SetListError makes List fail for path.
func (m *Memory) SetListError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.file(path).listErr = err
}

// SetGetError makes Get fail for one attribute of path. The attribute is
// still listed.
func (m *Memory) SetGetError(path, name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.file(path)
	f.getErrs[name] = err
	if _, ok := f.attrs[name]; !ok {
		f.attrs[name] = nil
	}
}

// AddRawName lists an arbitrary name, including one that is not valid
// UTF-8. Get on it returns an empty value.
func (m *Memory) AddRawName(path, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.file(path)
	f.extraRaw = append(f.extraRaw, name)
}

// SetDelay makes every List call sleep for d, or for the per-file delay
// set with SetFileDelay.
func (m *Memory) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// SetFileDelay overrides the List delay for one file.
func (m *Memory) SetFileDelay(path string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delayed[path] = d
}

// List implements Store. Names are returned sorted.
func (m *Memory) List(ctx context.Context, path string) ([]string, error) {
	m.mu.RLock()
	d, ok := m.delayed[path]
	if !ok {
		d = m.delay
	}
	m.mu.RUnlock()

	if err := sleep(ctx, d); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: fs.ErrNotExist}
	}
	if f.listErr != nil {
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: f.listErr}
	}

	names := make([]string, 0, len(f.attrs)+len(f.noValue)+len(f.extraRaw))
	for name := range f.attrs {
		names = append(names, name)
	}
	for name := range f.noValue {
		names = append(names, name)
	}
	sort.Strings(names)
	names = append(names, f.extraRaw...)
	return names, nil
}

// Get implements Store.
func (m *Memory) Get(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: fs.ErrNotExist}
	}
	if err, ok := f.getErrs[name]; ok {
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: err}
	}
	if f.noValue[name] {
		return nil, ErrNoValue
	}
	if v, ok := f.attrs[name]; ok {
		return append([]byte{}, v...), nil
	}
	for _, raw := range f.extraRaw {
		if raw == name {
			return []byte{}, nil
		}
	}
	return nil, ErrNoValue
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
