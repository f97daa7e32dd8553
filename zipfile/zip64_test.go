package zipfile

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neonimp/neonzip-go/common/file"
)

// zip64Entry is a stored entry whose central directory record pushes
// the selected fields into a zip64 extra field.
type zip64Entry struct {
	name          string
	body          []byte
	sizesInZip64  bool
	offsetInZip64 bool
	omitExtra     bool
}

func writeZip64LocalHeader(buf *bytes.Buffer, e zip64Entry) {
	binary.Write(buf, binary.LittleEndian, uint32(lfhMagic))
	binary.Write(buf, binary.LittleEndian, uint16(45)) // version needed
	binary.Write(buf, binary.LittleEndian, uint16(0))  // flags
	binary.Write(buf, binary.LittleEndian, uint16(0))  // method: store
	binary.Write(buf, binary.LittleEndian, uint16(0))  // mod time
	binary.Write(buf, binary.LittleEndian, uint16(0))  // mod date
	binary.Write(buf, binary.LittleEndian, crc32.ChecksumIEEE(e.body))
	binary.Write(buf, binary.LittleEndian, uint32(len(e.body)))
	binary.Write(buf, binary.LittleEndian, uint32(len(e.body)))
	binary.Write(buf, binary.LittleEndian, uint16(len(e.name)))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	buf.WriteString(e.name)
}

func writeZip64CentralRecord(buf *bytes.Buffer, e zip64Entry, offset uint64) {
	// Zip64 extra field values appear in a fixed order: uncompressed
	// size, compressed size, local header offset; only fields whose
	// 32-bit slot carries the sentinel are present.
	var values []byte
	size := uint32(len(e.body))
	headerOffset := uint32(offset)
	if e.sizesInZip64 {
		size = 0xffffffff
		values = binary.LittleEndian.AppendUint64(values, uint64(len(e.body)))
		values = binary.LittleEndian.AppendUint64(values, uint64(len(e.body)))
	}
	if e.offsetInZip64 {
		headerOffset = 0xffffffff
		values = binary.LittleEndian.AppendUint64(values, offset)
	}

	var extra []byte
	if len(values) > 0 && !e.omitExtra {
		extra = binary.LittleEndian.AppendUint16(nil, zip64ExtraID)
		extra = binary.LittleEndian.AppendUint16(extra, uint16(len(values)))
		extra = append(extra, values...)
	}

	binary.Write(buf, binary.LittleEndian, uint32(cdfhMagic))
	binary.Write(buf, binary.LittleEndian, uint16(45)) // version made by
	binary.Write(buf, binary.LittleEndian, uint16(45)) // version needed
	binary.Write(buf, binary.LittleEndian, uint16(0))  // flags
	binary.Write(buf, binary.LittleEndian, uint16(0))  // method: store
	binary.Write(buf, binary.LittleEndian, uint16(0))  // mod time
	binary.Write(buf, binary.LittleEndian, uint16(0))  // mod date
	binary.Write(buf, binary.LittleEndian, crc32.ChecksumIEEE(e.body))
	binary.Write(buf, binary.LittleEndian, size)
	binary.Write(buf, binary.LittleEndian, size)
	binary.Write(buf, binary.LittleEndian, uint16(len(e.name)))
	binary.Write(buf, binary.LittleEndian, uint16(len(extra)))
	binary.Write(buf, binary.LittleEndian, uint16(0)) // comment length
	binary.Write(buf, binary.LittleEndian, uint16(0)) // disk number start
	binary.Write(buf, binary.LittleEndian, uint16(0)) // internal attrs
	binary.Write(buf, binary.LittleEndian, uint32(0)) // external attrs
	binary.Write(buf, binary.LittleEndian, headerOffset)
	buf.WriteString(e.name)
	buf.Write(extra)
}

// buildZip64Archive lays out local headers, central directory, EOCD64
// record, locator and a sentinel-carrying EOCD, in that order.
func buildZip64Archive(t *testing.T, entries []zip64Entry) string {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]uint64, len(entries))
	for i, e := range entries {
		offsets[i] = uint64(buf.Len())
		writeZip64LocalHeader(&buf, e)
		buf.Write(e.body)
	}

	cdOffset := uint64(buf.Len())
	for i, e := range entries {
		writeZip64CentralRecord(&buf, e, offsets[i])
	}
	cdSize := uint64(buf.Len()) - cdOffset
	count := uint64(len(entries))

	eocd64Offset := uint64(buf.Len())
	binary.Write(&buf, binary.LittleEndian, uint32(eocd64Magic))
	binary.Write(&buf, binary.LittleEndian, uint64(eocd64Size-12)) // record size
	binary.Write(&buf, binary.LittleEndian, uint16(45))            // version made by
	binary.Write(&buf, binary.LittleEndian, uint16(45))            // version needed
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // disk number
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // cd disk number
	binary.Write(&buf, binary.LittleEndian, count)
	binary.Write(&buf, binary.LittleEndian, count)
	binary.Write(&buf, binary.LittleEndian, cdSize)
	binary.Write(&buf, binary.LittleEndian, cdOffset)

	binary.Write(&buf, binary.LittleEndian, uint32(locator64Magic))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // EOCD64 disk number
	binary.Write(&buf, binary.LittleEndian, eocd64Offset)
	binary.Write(&buf, binary.LittleEndian, uint32(1)) // total disks

	binary.Write(&buf, binary.LittleEndian, uint32(eocdMagic))
	binary.Write(&buf, binary.LittleEndian, uint16(0))          // disk number
	binary.Write(&buf, binary.LittleEndian, uint16(0))          // cd disk number
	binary.Write(&buf, binary.LittleEndian, uint16(0xffff))     // records on disk
	binary.Write(&buf, binary.LittleEndian, uint16(0xffff))     // records
	binary.Write(&buf, binary.LittleEndian, uint32(0xffffffff)) // cd size
	binary.Write(&buf, binary.LittleEndian, uint32(0xffffffff)) // cd offset
	binary.Write(&buf, binary.LittleEndian, uint16(0))          // comment length

	path := filepath.Join(t.TempDir(), "zip64.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestZip64Directory(t *testing.T) {
	entries := []zip64Entry{
		{name: "big.bin", body: []byte("pretends to be too big for 32 bits"), sizesInZip64: true, offsetInZip64: true},
		{name: "far.txt", body: []byte("offset only"), offsetInZip64: true},
	}
	z := openArchive(t, buildZip64Archive(t, entries))

	eocd, eocd64, parsed := z.Structures()
	if eocd.CDRecords != 0xffff {
		t.Errorf("EOCD records = %d, want sentinel", eocd.CDRecords)
	}
	if eocd64 == nil {
		t.Fatal("EOCD64 record not found")
	}
	if eocd64.CDRecords != uint64(len(entries)) {
		t.Errorf("EOCD64 records = %d, want %d", eocd64.CDRecords, len(entries))
	}
	if len(parsed) != len(entries) {
		t.Fatalf("indexed %d entries, want %d", len(parsed), len(entries))
	}

	for _, e := range entries {
		entry, err := z.Entry(e.name)
		if err != nil {
			t.Fatalf("Entry(%s): %v", e.name, err)
		}
		if entry.UncompressedSize != uint64(len(e.body)) {
			t.Errorf("%s: uncompressed size = %d, want %d", e.name, entry.UncompressedSize, len(e.body))
		}
		if entry.CompressedSize != uint64(len(e.body)) {
			t.Errorf("%s: compressed size = %d, want %d", e.name, entry.CompressedSize, len(e.body))
		}
		if entry.LocalHeaderOffset == 0xffffffff {
			t.Errorf("%s: local header offset not resolved", e.name)
		}

		data, err := z.ReadEntry(e.name)
		if err != nil {
			t.Fatalf("ReadEntry(%s): %v", e.name, err)
		}
		if !bytes.Equal(data, e.body) {
			t.Errorf("%s: content mismatch", e.name)
		}
	}
}

func TestZip64ExtraFieldMissing(t *testing.T) {
	entries := []zip64Entry{
		{name: "broken.bin", body: []byte("sentinel sizes, no extra"), sizesInZip64: true, omitExtra: true},
	}
	path := buildZip64Archive(t, entries)

	reader, err := file.NewLocalFile(path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer reader.Close()

	_, err = New(reader)
	if err == nil {
		t.Fatal("expected error for missing zip64 extra field")
	}
	if !strings.Contains(err.Error(), "zip64") {
		t.Errorf("error = %q, want mention of zip64", err)
	}
}
