package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

type DeflateDecompressor struct{}

// NewDeflateDecompressor creates a new raw deflate decompressor
func NewDeflateDecompressor() Decompressor {
	return &DeflateDecompressor{}
}

func (d *DeflateDecompressor) Decompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()
	return io.ReadAll(reader)
}

func (d *DeflateDecompressor) Method() Method {
	return Deflate
}

func (d *DeflateDecompressor) Implementation() string {
	return "Pure Go (klauspost/compress/flate)"
}
