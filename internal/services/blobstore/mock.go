package blobstore

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
)

// MockBackend is an in-memory StorageBackend for testing
type MockBackend struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	LoadErr error
	DelErr  error
}

// NewMockBackend creates an empty in-memory backend
func NewMockBackend() *MockBackend {
	return &MockBackend{blobs: make(map[string][]byte)}
}

// Put seeds a blob directly
func (m *MockBackend) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[path] = data
}

// Save saves data and returns the path
func (m *MockBackend) Save(ctx context.Context, data io.Reader, path string) (string, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Put(path, buf)
	return path, nil
}

// Load loads data from the in-memory map
func (m *MockBackend) Load(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes a blob
func (m *MockBackend) Delete(ctx context.Context, path string) error {
	if m.DelErr != nil {
		return m.DelErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[path]; !ok {
		return os.ErrNotExist
	}
	delete(m.blobs, path)
	return nil
}

// Exists checks the in-memory map
func (m *MockBackend) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[path]
	return ok, nil
}
