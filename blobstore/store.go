// Package blobstore provides storage abstraction for immutable GeoJSON
// documents.
//
// Store is the interface for reading and writing named documents.
// Implementations must be safe for concurrent use. Documents are written
// whole and never mutated in place; readers always observe complete
// content.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-process map, for tests and embedding
//   - CachingStore: local cache in front of a remote store
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and S3-compatible endpoints
//
// Compression is keyed off the document name: OpenDocument and
// CreateDocument wrap the raw stream for the ".gz", ".zst" and ".lz4"
// extensions.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a document does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable named documents.
type Store interface {
	// Open opens a document for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Create opens a document for streaming writes. The document
	// becomes visible once the returned writer is closed.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
	// Put writes a document atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a document. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, name string) error
	// List returns the document names under prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
