package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// WriteDoc writes a catalog document (front matter plus body) into dir.
func WriteDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// SetupCatalogDir creates a temporary directory holding docs (file name to content).
// It returns the absolute path to the directory.
func SetupCatalogDir(t *testing.T, docs map[string]string) string {
	t.Helper()

	// Loam sometimes prefers absolute paths, though t.TempDir usually returns one.
	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range docs {
		WriteDoc(t, absPath, name, content)
	}
	return absPath
}

// SetupTestRepo opens a read-only Loam repository over dir.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, dir string, opts ...loam.Option) core.Repository {
	t.Helper()

	repo, err := loam.Init(dir, append([]loam.Option{loam.WithStrict(true), loam.WithReadOnly(true)}, opts...)...)
	require.NoError(t, err, "Failed to init loam repo")
	return repo
}
