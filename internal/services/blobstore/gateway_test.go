package blobstore

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwns(t *testing.T) {
	gateway := NewGateway(NewMockBackend(), t.TempDir())

	tests := []struct {
		name   string
		userID string
		path   string
		want   bool
	}{
		{"own namespace", "user-a", "users/user-a/uploads/x.mp3", true},
		{"foreign namespace", "user-a", "users/user-b/uploads/x.mp3", false},
		{"prefix trickery", "user-a", "users/user-ab/uploads/x.mp3", false},
		{"no namespace", "user-a", "uploads/x.mp3", false},
		{"empty path", "user-a", "", false},
		{"empty user", "", "users//uploads/x.mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gateway.Owns(tt.userID, tt.path))
		})
	}
}

func TestFetchToTemp(t *testing.T) {
	ctx := context.Background()

	t.Run("copies blob and cleanup removes it", func(t *testing.T) {
		backend := NewMockBackend()
		backend.Put("users/user-a/uploads/talk.mp3", []byte("audio-bytes"))
		gateway := NewGateway(backend, t.TempDir())

		tempPath, cleanup, err := gateway.FetchToTemp(ctx, "users/user-a/uploads/talk.mp3")
		require.NoError(t, err)

		data, err := os.ReadFile(tempPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("audio-bytes"), data)
		assert.Equal(t, ".mp3", tempPath[len(tempPath)-4:])

		cleanup()
		_, err = os.Stat(tempPath)
		assert.True(t, os.IsNotExist(err))

		// Cleanup is idempotent
		cleanup()
	})

	t.Run("missing blob", func(t *testing.T) {
		gateway := NewGateway(NewMockBackend(), t.TempDir())

		_, cleanup, err := gateway.FetchToTemp(ctx, "users/user-a/uploads/missing.mp3")
		assert.ErrorIs(t, err, os.ErrNotExist)
		cleanup()
	})
}

func TestLocalBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("save load delete round trip", func(t *testing.T) {
		backend, err := NewLocalBackend(t.TempDir())
		require.NoError(t, err)

		path, err := backend.Save(ctx, strings.NewReader("hello"), "users/user-a/uploads/note.mp3")
		require.NoError(t, err)
		assert.Equal(t, "users/user-a/uploads/note.mp3", path)

		exists, err := backend.Exists(ctx, path)
		require.NoError(t, err)
		assert.True(t, exists)

		rc, err := backend.Load(ctx, path)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		require.NoError(t, backend.Delete(ctx, path))
		exists, err = backend.Exists(ctx, path)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete missing blob", func(t *testing.T) {
		backend, err := NewLocalBackend(t.TempDir())
		require.NoError(t, err)

		err = backend.Delete(ctx, "users/user-a/uploads/gone.mp3")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		backend, err := NewLocalBackend(t.TempDir())
		require.NoError(t, err)

		_, err = backend.Load(ctx, "../../etc/passwd")
		assert.Error(t, err)
	})
}
