// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-renamer/internal/filename"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "original.pdf", "pdf bytes")

	got, err := Rename(src, "renamed.pdf")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "renamed.pdf"), got)
	assert.NoFileExists(t, src)
	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestRename_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "original.pdf", "source")
	dst := writeFile(t, dir, "taken.pdf", "existing")

	_, err := Rename(src, "taken.pdf")
	require.ErrorIs(t, err, ErrDestinationExists)

	srcData, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "source", string(srcData))
	dstData, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(dstData))
}

func TestRename_SourceErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o755))

	_, err := Rename(filepath.Join(dir, "missing.pdf"), "new.pdf")
	assert.ErrorIs(t, err, ErrSourceMissing)

	_, err = Rename(filepath.Join(dir, "folder.pdf"), "new.pdf")
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestRename_RejectsInvalidName(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "original.pdf", "source")

	for _, name := range []string{"../escape.pdf", "sub/dir.pdf", "no-extension", ""} {
		_, err := Rename(src, name)
		assert.ErrorIs(t, err, filename.ErrInvalidFilename, name)
	}
	assert.FileExists(t, src)
}

func TestBaseName(t *testing.T) {
	got, err := BaseName("/path/to/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "file.pdf", got)

	got, err = BaseName("file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "file.pdf", got)

	_, err = BaseName("/")
	assert.Error(t, err)
}
