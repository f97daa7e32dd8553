// Package compression provides unified decompression interfaces for zip archive entries.
package compression

import (
	"fmt"
	"sort"
)

// Method is a zip compression method id as stored in local file headers
// and central directory records.
type Method uint16

const (
	Store   Method = 0
	Deflate Method = 8
	Bzip2   Method = 12
	LZMA    Method = 14
	Zstd    Method = 93
	XZ      Method = 95
)

// String returns the conventional name of the compression method
func (m Method) String() string {
	switch m {
	case Store:
		return "store"
	case Deflate:
		return "deflate"
	case Bzip2:
		return "bzip2"
	case LZMA:
		return "lzma"
	case Zstd:
		return "zstd"
	case XZ:
		return "xz"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(m))
	}
}

// Decompressor is the interface for decompressing a whole entry held in memory.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	Method() Method
	Implementation() string
}

// SizedDecompressor is implemented by codecs that need the expected
// uncompressed size to decode (zip LZMA streams carry no size field of
// their own; it lives in the central directory).
type SizedDecompressor interface {
	DecompressSized(data []byte, uncompressedSize uint64) ([]byte, error)
}

// Manager dispatches decompression by zip method id.
type Manager struct {
	decompressors map[Method]Decompressor
}

// NewManager creates a manager with all supported decompressors registered.
func NewManager() *Manager {
	m := &Manager{
		decompressors: make(map[Method]Decompressor),
	}

	m.decompressors[Store] = NewStoreDecompressor()
	m.decompressors[Deflate] = NewDeflateDecompressor()
	m.decompressors[Bzip2] = NewBzip2Decompressor()
	m.decompressors[LZMA] = NewLZMADecompressor()
	m.decompressors[Zstd] = NewZstdDecompressor()
	m.decompressors[XZ] = NewXZDecompressor()

	return m
}

// Decompress decompresses data using the given method.
func (m *Manager) Decompress(method Method, data []byte) ([]byte, error) {
	d, ok := m.decompressors[method]
	if !ok {
		return nil, fmt.Errorf("unsupported compression method: %s", method)
	}
	return d.Decompress(data)
}

// DecompressEntry decompresses a zip entry, passing the expected
// uncompressed size to codecs that require it.
func (m *Manager) DecompressEntry(method Method, data []byte, uncompressedSize uint64) ([]byte, error) {
	d, ok := m.decompressors[method]
	if !ok {
		return nil, fmt.Errorf("unsupported compression method: %s", method)
	}
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSized(data, uncompressedSize)
	}
	return d.Decompress(data)
}

// Supported reports whether a method has a registered decompressor.
func (m *Manager) Supported(method Method) bool {
	_, ok := m.decompressors[method]
	return ok
}

// Implementations returns the implementation description for every
// registered method, keyed by method name.
func (m *Manager) Implementations() map[string]string {
	impls := make(map[string]string, len(m.decompressors))
	for method, d := range m.decompressors {
		impls[method.String()] = d.Implementation()
	}
	return impls
}

// MethodNames returns the sorted names of all registered methods.
func (m *Manager) MethodNames() []string {
	names := make([]string, 0, len(m.decompressors))
	for method := range m.decompressors {
		names = append(names, method.String())
	}
	sort.Strings(names)
	return names
}
