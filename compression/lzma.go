package compression

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// zip method 14 frames the stream as: version (u16), properties size (u16),
// properties, raw LZMA data. The classic .lzma container instead carries the
// properties followed by a u64 uncompressed size, so decoding is a matter of
// re-framing the entry before handing it to the lzma reader.
const lzmaPreambleSize = 4

type LZMADecompressor struct{}

// NewLZMADecompressor creates a decompressor for zip LZMA entries
func NewLZMADecompressor() Decompressor {
	return &LZMADecompressor{}
}

func (d *LZMADecompressor) Decompress(data []byte) ([]byte, error) {
	// Without the central directory size the stream must carry an
	// end-of-stream marker, signalled by the unknown-size sentinel.
	return d.decompress(data, ^uint64(0))
}

func (d *LZMADecompressor) DecompressSized(data []byte, uncompressedSize uint64) ([]byte, error) {
	return d.decompress(data, uncompressedSize)
}

func (d *LZMADecompressor) decompress(data []byte, uncompressedSize uint64) ([]byte, error) {
	if len(data) < lzmaPreambleSize {
		return nil, fmt.Errorf("lzma entry too short: %d bytes", len(data))
	}

	propSize := int(binary.LittleEndian.Uint16(data[2:4]))
	if len(data) < lzmaPreambleSize+propSize {
		return nil, fmt.Errorf("lzma entry truncated: properties missing")
	}

	header := make([]byte, 0, propSize+8+len(data))
	header = append(header, data[lzmaPreambleSize:lzmaPreambleSize+propSize]...)
	header = binary.LittleEndian.AppendUint64(header, uncompressedSize)
	header = append(header, data[lzmaPreambleSize+propSize:]...)

	reader, err := lzma.NewReader(bytes.NewReader(header))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func (d *LZMADecompressor) Method() Method {
	return LZMA
}

func (d *LZMADecompressor) Implementation() string {
	return "Pure Go (ulikunitz/xz/lzma)"
}
