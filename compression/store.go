package compression

type StoreDecompressor struct{}

// NewStoreDecompressor creates a decompressor for stored (uncompressed) entries
func NewStoreDecompressor() Decompressor {
	return &StoreDecompressor{}
}

func (d *StoreDecompressor) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (d *StoreDecompressor) Method() Method {
	return Store
}

func (d *StoreDecompressor) Implementation() string {
	return "none (stored)"
}
