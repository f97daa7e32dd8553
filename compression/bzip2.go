package compression

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

type Bzip2Decompressor struct{}

// NewBzip2Decompressor creates a new bzip2 decompressor
func NewBzip2Decompressor() Decompressor {
	return &Bzip2Decompressor{}
}

func (d *Bzip2Decompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (d *Bzip2Decompressor) Method() Method {
	return Bzip2
}

func (d *Bzip2Decompressor) Implementation() string {
	return "Pure Go (dsnet/compress/bzip2)"
}
