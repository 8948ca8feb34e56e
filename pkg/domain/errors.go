package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no menu item exists with the requested id.
var ErrNotFound = errors.New("menu item not found")

// ValidationError reports the request fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// StorageError reports a failed read or write of the backing menu document.
type StorageError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("menu storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
