package zipfile

import (
	"encoding/binary"
	"fmt"

	"github.com/neonimp/neonzip-go/common/file"
	"github.com/neonimp/neonzip-go/compression"
)

const (
	eocdMagic      = 0x06054b50
	eocd64Magic    = 0x06064b50
	locator64Magic = 0x07064b50
	cdfhMagic      = 0x02014b50
	lfhMagic       = 0x04034b50

	eocdSize      = 22
	eocd64Size    = 56
	locator64Size = 20
	cdfhSize      = 46
	lfhSize       = 30

	maxCommentLen = 65535

	zip64ExtraID = 1
)

// findEOCD locates and parses the end-of-central-directory record. The
// record sits at the very end of the archive unless a comment follows it,
// in which case the tail of the file is scanned backwards for the magic.
func findEOCD(reader file.Reader) (*EOCD, error) {
	size := reader.Size()
	if size < eocdSize {
		return nil, fmt.Errorf("not enough length to contain EOCD")
	}

	data, err := reader.Read(size-eocdSize, eocdSize)
	if err != nil {
		return nil, err
	}

	if len(data) == eocdSize && binary.LittleEndian.Uint32(data[0:4]) == eocdMagic &&
		binary.LittleEndian.Uint16(data[20:22]) == 0 {
		return parseEOCD(data, size-eocdSize)
	}

	// Comment present: scan a tail window for the magic, accepting the
	// candidate whose comment length reaches the end of the file.
	trySize := int64(maxCommentLen + eocdSize)
	start := size - trySize
	if start < 0 {
		start = 0
		trySize = size
	}

	tail, err := reader.Read(start, int(trySize))
	if err != nil {
		return nil, err
	}

	for pos := len(tail) - eocdSize; pos >= 0; pos-- {
		if binary.LittleEndian.Uint32(tail[pos:pos+4]) != eocdMagic {
			continue
		}
		commentLen := int(binary.LittleEndian.Uint16(tail[pos+20 : pos+22]))
		if pos+eocdSize+commentLen != len(tail) {
			continue
		}
		return parseEOCD(tail[pos:], start+int64(pos))
	}

	return nil, fmt.Errorf("not a zip file: end of central directory not found")
}

func parseEOCD(data []byte, offset int64) (*EOCD, error) {
	eocd := &EOCD{
		Offset:          offset,
		DiskNumber:      binary.LittleEndian.Uint16(data[4:6]),
		CDDiskNumber:    binary.LittleEndian.Uint16(data[6:8]),
		CDRecordsOnDisk: binary.LittleEndian.Uint16(data[8:10]),
		CDRecords:       binary.LittleEndian.Uint16(data[10:12]),
		CDSize:          binary.LittleEndian.Uint32(data[12:16]),
		CDOffset:        binary.LittleEndian.Uint32(data[16:20]),
	}

	commentLen := int(binary.LittleEndian.Uint16(data[20:22]))
	if commentLen > 0 && len(data) >= eocdSize+commentLen {
		eocd.Comment = string(data[eocdSize : eocdSize+commentLen])
	}

	return eocd, nil
}

// findEOCD64 follows the zip64 locator preceding the EOCD to the zip64
// end-of-central-directory record.
func findEOCD64(reader file.Reader, eocd *EOCD) (*EOCD64, error) {
	locatorOffset := eocd.Offset - locator64Size
	if locatorOffset < 0 {
		return nil, fmt.Errorf("unexpected zip64 locator offset")
	}

	locatorData, err := reader.Read(locatorOffset, locator64Size)
	if err != nil {
		return nil, err
	}

	if binary.LittleEndian.Uint32(locatorData[0:4]) != locator64Magic {
		return nil, fmt.Errorf("unexpected zip64 locator magic")
	}

	eocd64Offset := int64(binary.LittleEndian.Uint64(locatorData[8:16]))

	data, err := reader.Read(eocd64Offset, eocd64Size)
	if err != nil {
		return nil, err
	}

	if binary.LittleEndian.Uint32(data[0:4]) != eocd64Magic {
		return nil, fmt.Errorf("unexpected zip64 EOCD magic")
	}

	return &EOCD64{
		Offset:          eocd64Offset,
		RecordSize:      binary.LittleEndian.Uint64(data[4:12]),
		VersionMadeBy:   binary.LittleEndian.Uint16(data[12:14]),
		VersionNeeded:   binary.LittleEndian.Uint16(data[14:16]),
		DiskNumber:      binary.LittleEndian.Uint32(data[16:20]),
		CDDiskNumber:    binary.LittleEndian.Uint32(data[20:24]),
		CDRecordsOnDisk: binary.LittleEndian.Uint64(data[24:32]),
		CDRecords:       binary.LittleEndian.Uint64(data[32:40]),
		CDSize:          binary.LittleEndian.Uint64(data[40:48]),
		CDOffset:        binary.LittleEndian.Uint64(data[48:56]),
	}, nil
}

// parseCentralDirectory reads cdNum records from the central directory
// blob and resolves zip64 extra fields.
func parseCentralDirectory(cdData []byte, cdNum uint64) ([]*Entry, error) {
	entries := make([]*Entry, 0, cdNum)

	pos := 0
	for i := uint64(0); i < cdNum && pos < len(cdData); i++ {
		if pos+cdfhSize > len(cdData) {
			return nil, fmt.Errorf("central directory truncated at record %d", i)
		}

		if binary.LittleEndian.Uint32(cdData[pos:pos+4]) != cdfhMagic {
			return nil, fmt.Errorf("invalid central directory magic at record %d", i)
		}

		rec := cdData[pos:]
		nameLen := int(binary.LittleEndian.Uint16(rec[28:30]))
		extraLen := int(binary.LittleEndian.Uint16(rec[30:32]))
		commentLen := int(binary.LittleEndian.Uint16(rec[32:34]))

		recordSize := cdfhSize + nameLen + extraLen + commentLen
		if pos+recordSize > len(cdData) {
			return nil, fmt.Errorf("central directory truncated at record %d", i)
		}

		entry := &Entry{
			VersionMadeBy:     binary.LittleEndian.Uint16(rec[4:6]),
			VersionNeeded:     binary.LittleEndian.Uint16(rec[6:8]),
			Flags:             binary.LittleEndian.Uint16(rec[8:10]),
			Method:            compression.Method(binary.LittleEndian.Uint16(rec[10:12])),
			ModTime:           binary.LittleEndian.Uint16(rec[12:14]),
			ModDate:           binary.LittleEndian.Uint16(rec[14:16]),
			CRC32:             binary.LittleEndian.Uint32(rec[16:20]),
			CompressedSize:    uint64(binary.LittleEndian.Uint32(rec[20:24])),
			UncompressedSize:  uint64(binary.LittleEndian.Uint32(rec[24:28])),
			DiskNumberStart:   binary.LittleEndian.Uint16(rec[34:36]),
			InternalAttrs:     binary.LittleEndian.Uint16(rec[36:38]),
			ExternalAttrs:     binary.LittleEndian.Uint32(rec[38:42]),
			LocalHeaderOffset: uint64(binary.LittleEndian.Uint32(rec[42:46])),
			Name:              string(rec[cdfhSize : cdfhSize+nameLen]),
		}

		if commentLen > 0 {
			entry.Comment = string(rec[cdfhSize+nameLen+extraLen : cdfhSize+nameLen+extraLen+commentLen])
		}

		extra := rec[cdfhSize+nameLen : cdfhSize+nameLen+extraLen]
		if err := resolveZip64Extra(entry, extra); err != nil {
			return nil, fmt.Errorf("record %d (%s): %v", i, entry.Name, err)
		}

		entries = append(entries, entry)
		pos += recordSize
	}

	if uint64(len(entries)) < cdNum {
		return nil, fmt.Errorf("central directory ends after %d of %d records", len(entries), cdNum)
	}

	return entries, nil
}

// resolveZip64Extra replaces 32-bit sentinel values with the 64-bit
// fields from the zip64 extension, in the order the format fixes them.
func resolveZip64Extra(entry *Entry, extra []byte) error {
	needed := entry.UncompressedSize == 0xffffffff ||
		entry.CompressedSize == 0xffffffff ||
		entry.LocalHeaderOffset == 0xffffffff
	if !needed {
		return nil
	}

	pos := 0
	for pos+4 <= len(extra) {
		headerID := binary.LittleEndian.Uint16(extra[pos : pos+2])
		fieldSize := int(binary.LittleEndian.Uint16(extra[pos+2 : pos+4]))

		if pos+4+fieldSize > len(extra) {
			break
		}

		if headerID == zip64ExtraID {
			field := extra[pos+4 : pos+4+fieldSize]
			fp := 0
			if entry.UncompressedSize == 0xffffffff {
				if fp+8 > len(field) {
					return fmt.Errorf("zip64 extra field too short")
				}
				entry.UncompressedSize = binary.LittleEndian.Uint64(field[fp : fp+8])
				fp += 8
			}
			if entry.CompressedSize == 0xffffffff {
				if fp+8 > len(field) {
					return fmt.Errorf("zip64 extra field too short")
				}
				entry.CompressedSize = binary.LittleEndian.Uint64(field[fp : fp+8])
				fp += 8
			}
			if entry.LocalHeaderOffset == 0xffffffff {
				if fp+8 > len(field) {
					return fmt.Errorf("zip64 extra field too short")
				}
				entry.LocalHeaderOffset = binary.LittleEndian.Uint64(field[fp : fp+8])
			}
			return nil
		}

		pos += 4 + fieldSize
	}

	return fmt.Errorf("zip64 sizes flagged but no zip64 extra field present")
}

// localDataOffset parses the local file header for an entry and returns
// the absolute offset of its data. Name and extra field lengths in the
// local header may differ from the central directory copy, so they are
// taken from the header itself.
func localDataOffset(reader file.Reader, entry *Entry) (int64, error) {
	data, err := reader.Read(int64(entry.LocalHeaderOffset), lfhSize)
	if err != nil {
		return 0, err
	}
	if len(data) < lfhSize {
		return 0, fmt.Errorf("local file header truncated for %s", entry.Name)
	}

	if binary.LittleEndian.Uint32(data[0:4]) != lfhMagic {
		return 0, fmt.Errorf("unexpected local file header magic for %s", entry.Name)
	}

	nameLen := int64(binary.LittleEndian.Uint16(data[26:28]))
	extraLen := int64(binary.LittleEndian.Uint16(data[28:30]))

	return int64(entry.LocalHeaderOffset) + lfhSize + nameLen + extraLen, nil
}
