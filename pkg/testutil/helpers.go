package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/filestate/pkg/filesystem"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemoryFS returns an in-memory filesystem with each of dirs created.
func MemoryFS(t *testing.T, dirs ...string) types.FS {
	t.Helper()

	afs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, afs.MkdirAll(dir, 0755), "creating %s", dir)
	}
	return filesystem.NewAferoFS(afs)
}

// WriteFileT writes content to path, failing the test on error.
func WriteFileT(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644), "writing %s", path)
}

// ReadFileT returns the content at path, failing the test on error.
func ReadFileT(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// TempPath returns name inside a fresh temporary directory.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
