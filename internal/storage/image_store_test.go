package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/storage"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "cover.PNG", strings.NewReader("fake png bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"), "ref should be an /uploads path, got %s", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "extension should be lowercased, got %s", ref)

	// The ref maps to a real file with the uploaded content.
	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestLocalImageStore_SaveGeneratesUniqueNames(t *testing.T) {
	store, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ref1, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("first"))
	require.NoError(t, err)
	ref2, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("second"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2, "two uploads of the same filename must not collide")
}

func TestLocalImageStore_SaveRespectsCancelledContext(t *testing.T) {
	store, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "cover.png", strings.NewReader("content"))
	assert.Error(t, err)
}

func TestNewLocalImageStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
