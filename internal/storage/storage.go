// Package storage keeps generated artifacts (spreadsheets) either in a local
// directory or in a MinIO bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidName = errors.New("invalid artifact name")
)

// Store is the artifact backend used by the test-plan service and the
// download endpoint. Names are flat: no directories.
type Store interface {
	// Put stores size bytes from r under name, replacing any previous artifact.
	// Readers never observe a partially written artifact.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Open returns the artifact content and its size, or ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	// Backend names the implementation for logs and metrics.
	Backend() string
}

// ValidName reports whether name is a plain file name that cannot escape the
// artifact directory.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}
