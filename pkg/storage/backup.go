package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// writeBackup writes a compact binary snapshot of the document next to the
// JSON file. Caller holds the store lock.
func (fs *FileStore) writeBackup(doc *domain.MenuDocument) error {
	msgpackData, err := msgpack.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressedData := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressedData, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}
	compressedData = compressedData[:n]

	file, err := os.Create(fs.backupPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WriteHeader(file, uint32(len(msgpackData))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := file.Write(compressedData); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return nil
}

// RestoreFromBackup reads the latest snapshot and rewrites the JSON file
// from it. Used to recover when the JSON document is lost or corrupted.
func (fs *FileStore) RestoreFromBackup() (*domain.MenuDocument, error) {
	doc, err := fs.readBackup()
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: fs.backupPath, Err: err}
	}

	if err := fs.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (fs *FileStore) readBackup() (*domain.MenuDocument, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	file, err := os.Open(fs.backupPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	header, err := ReadHeader(file)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot header: %w", err)
	}

	compressedData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed data: %w", err)
	}

	decompressedData := make([]byte, header.RawSize)
	n, err := lz4.UncompressBlock(compressedData, decompressedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}
	decompressedData = decompressedData[:n]

	var doc domain.MenuDocument
	if err := msgpack.Unmarshal(decompressedData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return &doc, nil
}
