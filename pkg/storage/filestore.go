package storage

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// FileStore persists the menu document as pretty-printed JSON at a fixed
// path, so the file stays diffable and hand-editable. A single RWMutex
// serializes access through one store instance; writers in other processes
// still race under last-write-wins.
type FileStore struct {
	mu sync.RWMutex

	// Configuration
	path       string
	backup     bool
	backupPath string
}

// NewFileStore creates a new file store
func NewFileStore(options ...StoreOption) *FileStore {
	fs := &FileStore{
		path: filepath.Join("data", "menu.json"),
	}

	// Apply options
	for _, option := range options {
		option(fs)
	}

	if fs.backupPath == "" {
		fs.backupPath = fs.path + BackupExtension
	}

	return fs
}

// Path returns the configured location of the menu document.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the full menu document from disk
func (fs *FileStore) Load() (*domain.MenuDocument, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: fs.path, Err: err}
	}

	var doc domain.MenuDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.StorageError{Op: "read", Path: fs.path, Err: err}
	}

	return &doc, nil
}

// Save serializes the full document and overwrites the file in place.
// Output is 2-space indented with stable key order, so saving a freshly
// loaded document leaves the file byte-identical.
func (fs *FileStore) Save(doc *domain.MenuDocument) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return &domain.StorageError{Op: "write", Path: fs.path, Err: err}
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &domain.StorageError{Op: "write", Path: fs.path, Err: err}
		}
	}

	if err := os.WriteFile(fs.path, buf.Bytes(), 0644); err != nil {
		return &domain.StorageError{Op: "write", Path: fs.path, Err: err}
	}

	// Snapshot failures never fail the save; the JSON file is authoritative.
	if fs.backup {
		if err := fs.writeBackup(doc); err != nil {
			log.Printf("WARN: Could not write backup snapshot to %s: %v", fs.backupPath, err)
		}
	}

	return nil
}
