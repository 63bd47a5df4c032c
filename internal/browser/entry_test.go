package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func makeDir(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
}

func TestReadSnapshotOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "A.txt", "a")
	makeDir(t, dir, "Zdir")

	entries, err := ReadSnapshot(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Parent first, then directories, then files in byte order.
	assert.Equal(t, "..", entries[0].Name)
	assert.Equal(t, "Zdir", entries[1].Name)
	assert.Equal(t, "A.txt", entries[2].Name)
	assert.Equal(t, "b.txt", entries[3].Name)
}

func TestReadSnapshotDirectoriesBeforeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aaa", "")
	makeDir(t, dir, "zzz")

	entries, err := ReadSnapshot(dir)
	require.NoError(t, err)

	sawFile := false
	for _, e := range entries[1:] {
		if !e.IsDir {
			sawFile = true
		}
		if sawFile {
			assert.False(t, e.IsDir, "directory %s appears after a file", e.Name)
		}
	}
}

func TestReadSnapshotParentEntry(t *testing.T) {
	dir := t.TempDir()

	entries, err := ReadSnapshot(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	parent := entries[0]
	assert.True(t, parent.IsParent())
	assert.True(t, parent.IsDir)
	assert.Equal(t, dir+string(filepath.Separator)+"..", parent.Path)
}

func TestReadSnapshotRootHasNoParent(t *testing.T) {
	root := string(filepath.Separator)

	entries, err := ReadSnapshot(root)
	require.NoError(t, err)

	for _, e := range entries {
		assert.False(t, e.IsParent())
	}
}

func TestReadSnapshotMissingDirectory(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestReadSnapshotFollowsDirSymlinks(t *testing.T) {
	dir := t.TempDir()
	makeDir(t, dir, "target")
	require.NoError(t, os.Symlink(filepath.Join(dir, "target"), filepath.Join(dir, "link")))

	entries, err := ReadSnapshot(dir)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Name == "link" {
			assert.True(t, e.IsDir, "symlink to a directory should navigate like one")
			return
		}
	}
	t.Fatal("symlink entry not found")
}
