//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_Remove(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFS(root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0644))

	err := fs.Remove("/file.txt")
	assert.NoError(t, err)

	exists, err := fs.Exists("/file.txt")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalFS_Remove_NonEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFS(root)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dir", "file.txt"), []byte("x"), 0644))

	// Remove is not recursive
	err := fs.Remove("/dir")
	assert.Error(t, err)

	exists, err := fs.Exists("/dir/file.txt")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalFS_Close(t *testing.T) {
	fs := NewLocalFS(t.TempDir())

	assert.NoError(t, fs.Close())
	assert.NoError(t, fs.Close())
}
