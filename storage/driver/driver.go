// Package driver defines the narrow byte-addressable storage interface
// that linestore, integrity, and padset build on. Keeping a seam here,
// rather than calling os.* directly from domain code, follows the
// teacher's storage-driver pattern: domain logic never knows its bytes
// live on a local disk.
package driver

import (
	"context"
	"fmt"
	"io"
)

// StorageDriver is a filesystem-like key/value object store. This
// module only ships a local-disk implementation (package filesystem);
// the interface exists so linestore/integrity/padset stay independent of
// how lines are actually persisted.
type StorageDriver interface {
	// GetContent retrieves the content stored at path as a []byte.
	GetContent(ctx context.Context, path string) ([]byte, error)

	// PutContent stores content at path, replacing any existing content
	// atomically.
	PutContent(ctx context.Context, path string, content []byte) error

	// Reader returns an io.ReadCloser for the content stored at path,
	// starting at the given byte offset.
	Reader(ctx context.Context, path string, offset int64) (io.ReadCloser, error)

	// Stat returns whether path exists and, if so, its size.
	Stat(ctx context.Context, path string) (FileInfo, error)

	// List returns the direct descendants of path, sorted lexically.
	List(ctx context.Context, path string) ([]string, error)

	// Delete removes the content stored at path.
	Delete(ctx context.Context, path string) error
}

// FileInfo describes a single path's presence on the backing store.
type FileInfo interface {
	Path() string
	Size() int64
	IsDir() bool
}

// PathNotFoundError is returned when operating on a nonexistent path.
type PathNotFoundError struct {
	Path string
}

func (e PathNotFoundError) Error() string {
	return fmt.Sprintf("storage driver: path not found: %s", e.Path)
}

// InvalidOffsetError is returned when attempting to read from an offset
// beyond the end of the stored content.
type InvalidOffsetError struct {
	Path   string
	Offset int64
}

func (e InvalidOffsetError) Error() string {
	return fmt.Sprintf("storage driver: invalid offset %d for path: %s", e.Offset, e.Path)
}
