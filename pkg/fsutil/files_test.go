package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_File_SameFilesystem(t *testing.T) {
	tempDir := t.TempDir()

	srcFile := filepath.Join(tempDir, "source.jar")
	dstFile := filepath.Join(tempDir, "libraries", "org", "lwjgl", "destination.jar")

	content := "jar bytes"
	err := os.WriteFile(srcFile, []byte(content), 0644)
	require.NoError(t, err)

	err = Move(srcFile, dstFile)
	require.NoError(t, err)

	movedContent, err := os.ReadFile(dstFile)
	require.NoError(t, err)
	assert.Equal(t, content, string(movedContent))

	_, err = os.Stat(srcFile)
	assert.True(t, os.IsNotExist(err))
}

func TestMove_EmptyPaths(t *testing.T) {
	assert.Error(t, Move("", "dst"))
	assert.Error(t, Move("src", ""))
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "object")

	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))

	// Directories are not files.
	assert.False(t, FileExists(tempDir))
}

func TestDirExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "jdk-17.0.10+7-jre")

	assert.False(t, DirExists(path))

	require.NoError(t, EnsureDir(path))
	assert.True(t, DirExists(path))

	// Regular files are not directories.
	file := filepath.Join(tempDir, "archive.tar.gz")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.False(t, DirExists(file))
}

func TestEnsureSymlink(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "objects")
	link := filepath.Join(tempDir, "virtual")

	require.NoError(t, EnsureDir(target))
	require.NoError(t, EnsureSymlink(target, link))

	resolved, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, resolved)

	// Second call is a no-op.
	require.NoError(t, EnsureSymlink(target, link))
}

func TestEnsureFileDir(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "a", "b", "c.json")

	require.NoError(t, EnsureFileDir(file))

	st, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}
