package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile_Missing(t *testing.T) {
	content, err := LoadFile(filepath.Join(t.TempDir(), "new.js"))
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestLoadFile_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1\n"), 0o644))

	content, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "let x = 1\n", content)
}

func TestLoadFile_Directory(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	require.Error(t, err)
}

func TestSaveFile_CreatesFileAndDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.js")

	require.NoError(t, SaveFile(path, "hello"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestSaveFile_KeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o755))

	require.NoError(t, SaveFile(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}
