// Package zipfile reads zip archives: central directory indexing, raw
// entry dumps, and decompressing extraction.
package zipfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/neonimp/neonzip-go/common/file"
	"github.com/neonimp/neonzip-go/compression"
)

// ZipFile is an indexed zip archive. Entries are read lazily from the
// underlying reader; only the central directory is held in memory.
type ZipFile struct {
	reader  file.Reader
	eocd    *EOCD
	eocd64  *EOCD64
	entries []*Entry
	index   map[string]*Entry
	manager *compression.Manager
}

// New reads and indexes a zip archive.
func New(reader file.Reader) (*ZipFile, error) {
	eocd, err := findEOCD(reader)
	if err != nil {
		return nil, err
	}

	z := &ZipFile{
		reader:  reader,
		eocd:    eocd,
		manager: compression.NewManager(),
	}

	cdNum := uint64(eocd.CDRecords)
	cdSize := uint64(eocd.CDSize)
	cdOffset := uint64(eocd.CDOffset)

	if eocd.CDRecords == 0xffff || eocd.CDSize == 0xffffffff || eocd.CDOffset == 0xffffffff {
		eocd64, err := findEOCD64(reader, eocd)
		if err != nil {
			return nil, err
		}
		z.eocd64 = eocd64
		cdNum = eocd64.CDRecords
		cdSize = eocd64.CDSize
		cdOffset = eocd64.CDOffset
	}

	cdData, err := reader.Read(int64(cdOffset), int(cdSize))
	if err != nil {
		return nil, err
	}

	entries, err := parseCentralDirectory(cdData, cdNum)
	if err != nil {
		return nil, err
	}

	z.entries = entries
	z.index = make(map[string]*Entry, len(entries))
	for _, entry := range entries {
		z.index[entry.Name] = entry
	}

	return z, nil
}

func (z *ZipFile) Close() error {
	if z == nil || z.reader == nil {
		return nil
	}
	return z.reader.Close()
}

// Entries returns all central directory entries in archive order.
func (z *ZipFile) Entries() []*Entry {
	return z.entries
}

// Entry returns the central directory entry for a name.
func (z *ZipFile) Entry(name string) (*Entry, error) {
	entry, ok := z.index[name]
	if !ok {
		return nil, fmt.Errorf("entry not found: %s", name)
	}
	return entry, nil
}

// EntryInfo returns listing information for a single entry.
func (z *ZipFile) EntryInfo(name string) (EntryInfo, error) {
	entry, err := z.Entry(name)
	if err != nil {
		return EntryInfo{}, err
	}
	return infoFromEntry(entry), nil
}

// ListEntries returns listing information for every entry.
func (z *ZipFile) ListEntries() []EntryInfo {
	info := make([]EntryInfo, 0, len(z.entries))
	for _, entry := range z.entries {
		info = append(info, infoFromEntry(entry))
	}
	return info
}

// ListEntriesAsMap returns listing information keyed by entry name.
func (z *ZipFile) ListEntriesAsMap() map[string]EntryInfo {
	info := make(map[string]EntryInfo, len(z.entries))
	for _, entry := range z.entries {
		info[entry.Name] = infoFromEntry(entry)
	}
	return info
}

// Structures returns the parsed archive structures for inspection.
// The zip64 record is nil for plain archives.
func (z *ZipFile) Structures() (*EOCD, *EOCD64, []*Entry) {
	return z.eocd, z.eocd64, z.entries
}

// DumpEntry returns the raw bytes of an entry as stored in the archive,
// without decompressing them.
func (z *ZipFile) DumpEntry(name string) ([]byte, error) {
	entry, err := z.Entry(name)
	if err != nil {
		return nil, err
	}
	return z.dump(entry)
}

func (z *ZipFile) dump(entry *Entry) ([]byte, error) {
	dataOffset, err := localDataOffset(z.reader, entry)
	if err != nil {
		return nil, err
	}

	data, err := z.reader.Read(dataOffset, int(entry.CompressedSize))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) != entry.CompressedSize {
		return nil, fmt.Errorf("entry data truncated: %s", entry.Name)
	}

	return data, nil
}

// ReadEntry decompresses an entry fully into memory.
func (z *ZipFile) ReadEntry(name string) ([]byte, error) {
	entry, err := z.Entry(name)
	if err != nil {
		return nil, err
	}
	return z.expand(entry)
}

func (z *ZipFile) expand(entry *Entry) ([]byte, error) {
	if !z.manager.Supported(entry.Method) {
		return nil, fmt.Errorf("entry %s: unsupported compression method %s", entry.Name, entry.Method)
	}

	data, err := z.dump(entry)
	if err != nil {
		return nil, err
	}

	out, err := z.manager.DecompressEntry(entry.Method, data, entry.UncompressedSize)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %v", entry.Name, err)
	}
	return out, nil
}

// Open returns a reader over the decompressed contents of an entry.
func (z *ZipFile) Open(name string) (io.ReadCloser, error) {
	data, err := z.ReadEntry(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
