package storage

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic bytes to identify our snapshot format
	MagicBytes = "MENU"
	// Current version
	FormatVersion = 1
	// File extension for backup snapshots
	BackupExtension = ".menub"
)

// SnapshotHeader represents the header of a backup snapshot file
type SnapshotHeader struct {
	Magic    [4]byte // "MENU"
	Version  uint8   // Format version
	Flags    uint8   // Reserved for future use
	Reserved [2]byte // Reserved for future use
	RawSize  uint32  // Uncompressed payload size in bytes
}

// WriteHeader writes the snapshot header to the given writer
func WriteHeader(w io.Writer, rawSize uint32) error {
	header := SnapshotHeader{
		Magic:    [4]byte{'M', 'E', 'N', 'U'},
		Version:  FormatVersion,
		Flags:    0,
		Reserved: [2]byte{0, 0},
		RawSize:  rawSize,
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the snapshot header
func ReadHeader(r io.Reader) (*SnapshotHeader, error) {
	var header SnapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Validate magic bytes
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid snapshot format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	// Validate version
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", header.Version)
	}

	return &header, nil
}
