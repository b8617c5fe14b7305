package blobstore

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// service implements Gateway on top of a StorageBackend
type service struct {
	backend StorageBackend
	tempDir string
}

// NewGateway creates a Gateway backed by the given storage backend.
// tempDir may be empty, in which case the system temp directory is used.
func NewGateway(backend StorageBackend, tempDir string) Gateway {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &service{backend: backend, tempDir: tempDir}
}

// UserNamespace returns the path prefix under which a user's blobs live
func UserNamespace(userID string) string {
	return fmt.Sprintf("users/%s/", userID)
}

// Owns reports whether path lies inside the user's namespace
func (s *service) Owns(userID, path string) bool {
	if userID == "" || path == "" {
		return false
	}
	return strings.HasPrefix(path, UserNamespace(userID))
}

// FetchToTemp copies a blob to a temporary file and returns its path
// together with a cleanup function
func (s *service) FetchToTemp(ctx context.Context, path string) (string, func(), error) {
	src, err := s.backend.Load(ctx, path)
	if err != nil {
		return "", func() {}, err
	}
	defer src.Close()

	tempPath := filepath.Join(s.tempDir, uuid.NewString()+filepath.Ext(path))
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to create temp file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			log.Printf("[ERROR] Failed to remove temp file %s: %v", tempPath, err)
		}
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("failed to copy blob to temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("failed to flush temp file: %w", err)
	}

	return tempPath, cleanup, nil
}

// Delete removes the blob at path
func (s *service) Delete(ctx context.Context, path string) error {
	return s.backend.Delete(ctx, path)
}
