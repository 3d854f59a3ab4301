package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG: signature plus IHDR fragment, enough for content
// sniffing.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestDiskStore_SaveGeneratesRandomName(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save("avatar.png", pngBytes)
	require.NoError(t, err)
	second, err := store.Save("avatar.png", pngBytes)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same source name must never collide")
	assert.True(t, strings.HasSuffix(first, ".png"))

	content, err := os.ReadFile(filepath.Join(store.Dir(), first))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, content)
}

func TestDiskStore_RejectsEmptyFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("empty.png", nil)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestDiskStore_RejectsNonImageContent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("script.png", []byte("#!/bin/sh\necho pwned"))
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestDiskStore_RejectsUnknownExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("image.svg", pngBytes)
	require.Error(t, err)

	_, err = store.Save("noext", pngBytes)
	require.Error(t, err)
}

func TestDiskStore_RejectsOversizedFile(t *testing.T) {
	store := newTestStore(t)

	big := append([]byte{}, pngBytes...)
	big = append(big, make([]byte, maxUploadSizeBytes)...)

	_, err := store.Save("huge.png", big)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
