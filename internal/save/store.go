package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// MemStore is an in-memory Store, used by tests and available as a
// fallback when no save file is wanted.
type MemStore struct {
	buf      []byte
	writable bool
}

// NewMemStore allocates a zeroed in-memory region of the given size.
func NewMemStore(size int) *MemStore {
	return &MemStore{buf: make([]byte, size)}
}

// ReadByte returns the byte at addr, or 0 when addr is out of range.
func (m *MemStore) ReadByte(addr int) byte {
	if addr < 0 || addr >= len(m.buf) {
		return 0
	}
	return m.buf[addr]
}

// WriteByte stores b at addr. Ignored outside a WithWriteAccess window
// or when addr is out of range.
func (m *MemStore) WriteByte(addr int, b byte) {
	if !m.writable || addr < 0 || addr >= len(m.buf) {
		return
	}
	m.buf[addr] = b
}

// WithWriteAccess enables writes for the duration of body.
func (m *MemStore) WithWriteAccess(body func()) error {
	m.writable = true
	defer func() { m.writable = false }()
	body()
	return nil
}

// FileStore is a Store backed by a fixed-size file. The whole region is
// read once at open; WithWriteAccess flushes the region back to disk
// after body runs.
type FileStore struct {
	path     string
	buf      []byte
	writable bool
}

// OpenFile loads the region at path, creating a zeroed region when the
// file does not exist yet. A short file is padded; a longer one is
// truncated to size.
func OpenFile(path string, size int) (*FileStore, error) {
	buf := make([]byte, size)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open save file %s: %w", path, err)
	}
	copy(buf, data)
	return &FileStore{path: path, buf: buf}, nil
}

// ReadByte returns the byte at addr, or 0 when addr is out of range.
func (f *FileStore) ReadByte(addr int) byte {
	if addr < 0 || addr >= len(f.buf) {
		return 0
	}
	return f.buf[addr]
}

// WriteByte stores b at addr. Ignored outside a WithWriteAccess window
// or when addr is out of range.
func (f *FileStore) WriteByte(addr int, b byte) {
	if !f.writable || addr < 0 || addr >= len(f.buf) {
		return
	}
	f.buf[addr] = b
}

// WithWriteAccess enables writes for the duration of body, then flushes
// the region to disk. Write access is revoked even if body panics.
func (f *FileStore) WithWriteAccess(body func()) error {
	f.writable = true
	defer func() { f.writable = false }()
	body()
	if err := os.WriteFile(f.path, f.buf, 0o644); err != nil {
		return fmt.Errorf("flush save file %s: %w", f.path, err)
	}
	return nil
}
