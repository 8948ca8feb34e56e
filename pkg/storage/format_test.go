package storage

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHeader_WriteAndRead(t *testing.T) {
	// Test writing header
	var buf bytes.Buffer
	err := WriteHeader(&buf, 1024)
	require.NoError(t, err)

	// Verify header was written
	data := buf.Bytes()
	assert.Len(t, data, 12) // 4 bytes magic + 1 byte version + 1 byte flags + 2 bytes reserved + 4 bytes raw size

	// Test reading header
	header, err := ReadHeader(&buf)
	require.NoError(t, err)

	// Verify header contents
	assert.Equal(t, MagicBytes, string(header.Magic[:]))
	assert.EqualValues(t, FormatVersion, header.Version)
	assert.Equal(t, uint8(0), header.Flags)
	assert.Equal(t, [2]byte{0, 0}, header.Reserved)
	assert.Equal(t, uint32(1024), header.RawSize)
}

func TestSnapshotHeader_InvalidMagic(t *testing.T) {
	// Create buffer with invalid magic bytes
	var buf bytes.Buffer
	invalidHeader := SnapshotHeader{
		Magic:    [4]byte{'I', 'N', 'V', 'L'},
		Version:  FormatVersion,
		Flags:    0,
		Reserved: [2]byte{0, 0},
	}

	// Write invalid header
	err := binary.Write(&buf, binary.LittleEndian, invalidHeader)
	require.NoError(t, err)

	// Try to read it
	_, err = ReadHeader(&buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot format")
}

func TestSnapshotHeader_InvalidVersion(t *testing.T) {
	// Create buffer with invalid version
	var buf bytes.Buffer
	invalidHeader := SnapshotHeader{
		Magic:    [4]byte{'M', 'E', 'N', 'U'},
		Version:  99, // Invalid version
		Flags:    0,
		Reserved: [2]byte{0, 0},
	}

	// Write invalid header
	err := binary.Write(&buf, binary.LittleEndian, invalidHeader)
	require.NoError(t, err)

	// Try to read it
	_, err = ReadHeader(&buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot version")
}

func TestSnapshotHeader_ShortBuffer(t *testing.T) {
	// Create buffer with insufficient data
	var buf bytes.Buffer
	buf.Write([]byte{1, 2, 3}) // Only 3 bytes

	// Try to read header
	_, err := ReadHeader(&buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read header")
}

func TestConstants(t *testing.T) {
	// Test magic bytes
	assert.Equal(t, "MENU", MagicBytes)
	assert.Len(t, MagicBytes, 4)

	// Test format version
	assert.EqualValues(t, uint8(1), FormatVersion)

	// Test file extension
	assert.Equal(t, ".menub", BackupExtension)
}

func TestSnapshotHeader_Endianness(t *testing.T) {
	// Test that header is written in little endian
	var buf bytes.Buffer
	err := WriteHeader(&buf, 0x01020304)
	require.NoError(t, err)

	data := buf.Bytes()

	// Magic bytes should be in correct order
	assert.Equal(t, byte('M'), data[0])
	assert.Equal(t, byte('E'), data[1])
	assert.Equal(t, byte('N'), data[2])
	assert.Equal(t, byte('U'), data[3])

	// Version should be in correct position
	assert.Equal(t, byte(FormatVersion), data[4])

	// Raw size is little endian at the tail
	assert.Equal(t, byte(0x04), data[8])
	assert.Equal(t, byte(0x03), data[9])
	assert.Equal(t, byte(0x02), data[10])
	assert.Equal(t, byte(0x01), data[11])
}
