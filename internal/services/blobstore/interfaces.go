package blobstore

import (
	"context"
	"io"
)

// StorageBackend defines the interface for blob storage operations
type StorageBackend interface {
	// Save saves data to storage and returns the path
	Save(ctx context.Context, data io.Reader, path string) (string, error)

	// Load loads data from storage
	Load(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes data from storage
	Delete(ctx context.Context, path string) error

	// Exists checks if a blob exists in storage
	Exists(ctx context.Context, path string) (bool, error)
}

// Gateway exposes user-scoped blob access to the orchestrators.
// Callers must check Owns before any fetch or delete; the gateway itself
// only knows paths, not users.
type Gateway interface {
	// Owns reports whether path lies inside the user's namespace
	Owns(userID, path string) bool

	// FetchToTemp copies a blob to a temporary file and returns its path
	// together with a cleanup function. The cleanup function is safe to
	// call on every exit path.
	FetchToTemp(ctx context.Context, path string) (string, func(), error)

	// Delete removes the blob at path
	Delete(ctx context.Context, path string) error
}
