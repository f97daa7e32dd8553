package zipfile

import (
	"fmt"

	"github.com/neonimp/neonzip-go/compression"
)

// EOCD is the end-of-central-directory record, the last structure in a
// zip archive. The reader locates it first and follows it to the
// central directory.
type EOCD struct {
	Offset          int64  `json:"offset"`
	DiskNumber      uint16 `json:"disk_number"`
	CDDiskNumber    uint16 `json:"cd_disk_number"`
	CDRecordsOnDisk uint16 `json:"cd_records_on_disk"`
	CDRecords       uint16 `json:"cd_records"`
	CDSize          uint32 `json:"cd_size"`
	CDOffset        uint32 `json:"cd_offset"`
	Comment         string `json:"comment,omitempty"`
}

// EOCD64 is the zip64 end-of-central-directory record, present when any
// EOCD field overflows its 16/32-bit encoding.
type EOCD64 struct {
	Offset          int64  `json:"offset"`
	RecordSize      uint64 `json:"record_size"`
	VersionMadeBy   uint16 `json:"version_made_by"`
	VersionNeeded   uint16 `json:"version_needed"`
	DiskNumber      uint32 `json:"disk_number"`
	CDDiskNumber    uint32 `json:"cd_disk_number"`
	CDRecordsOnDisk uint64 `json:"cd_records_on_disk"`
	CDRecords       uint64 `json:"cd_records"`
	CDSize          uint64 `json:"cd_size"`
	CDOffset        uint64 `json:"cd_offset"`
}

// Entry is one central directory record with zip64 extensions resolved.
type Entry struct {
	Name              string             `json:"name"`
	VersionMadeBy     uint16             `json:"version_made_by"`
	VersionNeeded     uint16             `json:"version_needed"`
	Flags             uint16             `json:"flags"`
	Method            compression.Method `json:"method"`
	ModTime           uint16             `json:"mod_time"`
	ModDate           uint16             `json:"mod_date"`
	CRC32             uint32             `json:"crc32"`
	CompressedSize    uint64             `json:"compressed_size"`
	UncompressedSize  uint64             `json:"uncompressed_size"`
	DiskNumberStart   uint16             `json:"disk_number_start"`
	InternalAttrs     uint16             `json:"internal_attrs"`
	ExternalAttrs     uint32             `json:"external_attrs"`
	LocalHeaderOffset uint64             `json:"local_header_offset"`
	Comment           string             `json:"comment,omitempty"`
}

const (
	// Flag bit 3: sizes and CRC live in a trailing data descriptor
	// instead of the local file header. The central directory copy is
	// authoritative either way.
	flagDataDescriptor = 1 << 3

	externalAttrDirectory = 0x10
	externalAttrSymlink   = 0x40000000
)

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	if len(e.Name) > 0 && e.Name[len(e.Name)-1] == '/' {
		return true
	}
	return e.ExternalAttrs&externalAttrDirectory != 0
}

// IsSymlink reports whether the entry records a symbolic link in its
// external attributes.
func (e *Entry) IsSymlink() bool {
	return e.ExternalAttrs&externalAttrSymlink != 0
}

// EntryInfo is the exported listing form of an entry.
type EntryInfo struct {
	Name             string `json:"name"`
	IsDir            bool   `json:"is_dir"`
	IsSymlink        bool   `json:"is_symlink"`
	IsCompressed     bool   `json:"is_compressed"`
	Method           string `json:"method"`
	CompressedSize   uint64 `json:"compressed_size"`
	UncompressedSize uint64 `json:"uncompressed_size"`
	SizeReadable     string `json:"size_readable"`
	CRC32            string `json:"crc32"`
}

func infoFromEntry(e *Entry) EntryInfo {
	return EntryInfo{
		Name:             e.Name,
		IsDir:            e.IsDir(),
		IsSymlink:        e.IsSymlink(),
		IsCompressed:     e.Method != compression.Store,
		Method:           e.Method.String(),
		CompressedSize:   e.CompressedSize,
		UncompressedSize: e.UncompressedSize,
		SizeReadable:     formatSize(e.UncompressedSize),
		CRC32:            fmt.Sprintf("%08x", e.CRC32),
	}
}

// ProgressInfo represents progress information for extraction
type ProgressInfo struct {
	EntryName        string  `json:"entry_name"`
	TotalEntries     int     `json:"total_entries"`
	CompletedEntries int     `json:"completed_entries"`
	ProgressPercent  float64 `json:"progress_percent"`
	SizeReadable     string  `json:"size_readable"`
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)

// ExtractOptions configures ExtractEntries.
type ExtractOptions struct {
	// Workers caps the number of entries decompressed concurrently.
	// Zero or negative means one per CPU.
	Workers int
	// Verify checks the CRC32 of each extracted entry against the
	// central directory.
	Verify bool
	// Progress, when set, receives one update per completed entry.
	Progress ProgressCallback
}

// formatSize converts bytes into a human-readable string.
func formatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if bytes >= GB {
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	} else if bytes >= MB {
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	} else {
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	}
}
