package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()

	store, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorageRoundtrip(t *testing.T) {
	store := newLocalStorage(t)
	ctx := context.Background()

	err := store.Save(ctx, "cv/abc.pdf", strings.NewReader("pdf-bytes"), "application/pdf")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("pdf-bytes")), size)

	reader, err := store.Get(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	defer reader.Close()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))

	require.NoError(t, store.Delete(ctx, "cv/abc.pdf"))
	exists, err = store.Exists(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store := newLocalStorage(t)

	assert.NoError(t, store.Delete(context.Background(), "never/saved.png"))
}

func TestTraversalStaysInsideBasePath(t *testing.T) {
	store := newLocalStorage(t)
	ctx := context.Background()

	// Climbing segments collapse against the storage root instead of
	// escaping it.
	err := store.Save(ctx, "../../outside.txt", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)

	escaped := filepath.Join(store.basePath, "..", "outside.txt")
	_, statErr := os.Stat(escaped)
	assert.True(t, os.IsNotExist(statErr))

	exists, err := store.Exists(ctx, "outside.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetURL(t *testing.T) {
	store := newLocalStorage(t)

	url, err := store.GetURL(context.Background(), "avatars/user.png")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/avatars/user.png", url)
}
