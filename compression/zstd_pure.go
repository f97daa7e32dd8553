//go:build (!cgo) || force_pure_compression || pure_zstd
// +build !cgo force_pure_compression pure_zstd

package compression

import (
	"github.com/klauspost/compress/zstd"
)

type ZstdDecompressor struct {
	decoder *zstd.Decoder
}

// NewZstdDecompressor creates a new zstd decompressor using pure Go implementation
func NewZstdDecompressor() Decompressor {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		decoder, _ = zstd.NewReader(nil)
	}

	return &ZstdDecompressor{
		decoder: decoder,
	}
}

func (d *ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	return d.decoder.DecodeAll(data, nil)
}

func (d *ZstdDecompressor) Method() Method {
	return Zstd
}

func (d *ZstdDecompressor) Implementation() string {
	return "Pure Go (klauspost/compress/zstd)"
}
