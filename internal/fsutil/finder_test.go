package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("# test"), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"))
	writeFile(t, filepath.Join(dir, "a.hcl"))
	writeFile(t, filepath.Join(dir, "nested", "c.hcl"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	t.Run("directory is walked recursively", func(t *testing.T) {
		files, err := FindFilesByExtension(".hcl", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "nested", "c.hcl"),
		}, files)
	})

	t.Run("files are deduplicated across roots", func(t *testing.T) {
		files, err := FindFilesByExtension(".hcl", filepath.Join(dir, "a.hcl"), dir)
		require.NoError(t, err)
		assert.Len(t, files, 3)
		assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0])
	})

	t.Run("explicit file must match the extension", func(t *testing.T) {
		_, err := FindFilesByExtension(".hcl", filepath.Join(dir, "notes.txt"))
		assert.ErrorContains(t, err, "does not have the .hcl extension")
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := FindFilesByExtension(".hcl", filepath.Join(dir, "missing"))
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("empty extension panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFilesByExtension("", dir) })
	})
}
