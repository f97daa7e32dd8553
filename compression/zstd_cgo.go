//go:build (cgo && !force_pure_compression && !pure_zstd) || force_cgo_compression || cgo_zstd
// +build cgo,!force_pure_compression,!pure_zstd force_cgo_compression cgo_zstd

package compression

import (
	"github.com/valyala/gozstd"
)

type ZstdDecompressor struct{}

// NewZstdDecompressor creates a new zstd decompressor using CGO implementation
func NewZstdDecompressor() Decompressor {
	return &ZstdDecompressor{}
}

func (d *ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	return gozstd.Decompress(nil, data)
}

func (d *ZstdDecompressor) Method() Method {
	return Zstd
}

func (d *ZstdDecompressor) Implementation() string {
	return "CGO (valyala/gozstd)"
}
