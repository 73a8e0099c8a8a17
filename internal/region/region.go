// Package region makes the input file addressable for the chunk splitter
// and the parsers.
package region

import (
	"errors"
	"fmt"
	"os"
)

// Backend selects how the input file is made addressable.
type Backend string

const (
	// Mmap maps the whole file read-only with mmap-go. Default.
	Mmap Backend = "mmap"

	// Unix maps the file with x/sys/unix and advises sequential access.
	Unix Backend = "unix"

	// ReadAt maps the file with go-mmap and copies chunks out with ReadAt.
	ReadAt Backend = "readat"

	// ReadAtExp maps the file with x/exp/mmap and copies chunks out with
	// ReadAt.
	ReadAtExp Backend = "readat-exp"
)

// Backends lists every known backend, default first.
var Backends = []Backend{Mmap, Unix, ReadAt, ReadAtExp}

// Available lists the backends this platform supports.
func Available() []Backend {
	if unixSupported {
		return Backends
	}
	return []Backend{Mmap, ReadAt, ReadAtExp}
}

// ErrUnknownBackend is returned by Open and ParseBackend for names not in
// Backends.
var ErrUnknownBackend = errors.New("unknown region backend")

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Region is a read-only view over the input file. It is shared by all
// workers and must not be written to.
type Region interface {
	// Len is the file size in bytes.
	Len() int

	// At returns the byte at offset i.
	At(i int) byte

	// Slice returns the bytes in [start, end). Zero-copy backends return a
	// view of the mapping and ignore buf; the others copy into buf, growing
	// it when it is too small.
	Slice(start, end int, buf []byte) ([]byte, error)

	Close() error
}

// Open makes the file at path addressable with the given backend.
func Open(path string, backend Backend) (Region, error) {
	switch backend {
	case Mmap, "":
		return openMmap(path)
	case Unix:
		return openUnix(path)
	case ReadAt:
		return openGoMmap(path)
	case ReadAtExp:
		return openExpMmap(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Bytes wraps an in-memory buffer as a Region.
func Bytes(data []byte) Region {
	return &mapped{data: data}
}

// mapped is a Region over bytes that are already addressable.
type mapped struct {
	data  []byte
	unmap func() error
}

func (m *mapped) Len() int { return len(m.data) }

func (m *mapped) At(i int) byte { return m.data[i] }

func (m *mapped) Slice(start, end int, _ []byte) ([]byte, error) {
	return m.data[start:end], nil
}

func (m *mapped) Close() error {
	if m.unmap == nil {
		return nil
	}
	err := m.unmap()
	m.unmap = nil
	m.data = nil
	return err
}

// openSized opens path and returns it with its size, checking that the size
// fits in an int.
func openSized(path string) (*os.File, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	size := fi.Size()
	if size < 0 || size != int64(int(size)) {
		f.Close()
		return nil, 0, fmt.Errorf("invalid file size of %s: %d", path, size)
	}
	return f, int(size), nil
}

func growBuf(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
