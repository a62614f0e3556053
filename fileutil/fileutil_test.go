package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "hello")

	require.NoError(t, Copy(src, dst))
	assert.Equal(t, "hello", readFile(t, dst))

	// Overwrites
	writeFile(t, src, "bye")
	require.NoError(t, Copy(src, dst))
	assert.Equal(t, "bye", readFile(t, dst))

	assert.Error(t, Copy(filepath.Join(dir, "missing"), dst))
}

func TestCopyFromAndTo(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, CopyFrom(strings.NewReader("streamed"), dst))

	var buf bytes.Buffer
	require.NoError(t, CopyTo(dst, &buf))
	assert.Equal(t, "streamed", buf.String())
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, src, "x")
	assert.True(t, CopyFile(src, filepath.Join(dir, "dst")))
	assert.False(t, CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst2")))
	assert.False(t, CopyFile(src, filepath.Join(dir, "no", "such", "dir")))
}

func TestExtension(t *testing.T) {
	cases := []struct {
		name  string
		lower bool
		ext   string
		ok    bool
	}{
		{"report.PDF", false, "PDF", true},
		{"report.PDF", true, "pdf", true},
		{"archive.tar.gz", true, "gz", true},
		{"README", true, "", false},
		{"trailing.", true, "", false},
		{".profile", true, "profile", true},
	}
	for _, c := range cases {
		ext, ok := Extension(c.name, c.lower)
		assert.Equal(t, c.ext, ext, c.name)
		assert.Equal(t, c.ok, ok, c.name)
	}
}

func TestNameWithoutExtension(t *testing.T) {
	assert.Equal(t, "archive.tar", NameWithoutExtension("archive.tar.gz"))
	assert.Equal(t, "README", NameWithoutExtension("README"))
	assert.Equal(t, "", NameWithoutExtension(".profile"))
	assert.Equal(t, "trailing", NameWithoutExtension("trailing."))
}

func TestFileExtension(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Photo.JPG")
	writeFile(t, file, "")

	ext, ok := FileExtension(file, true)
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	name, ok := FileNameWithoutExtension(file)
	assert.True(t, ok)
	assert.Equal(t, "Photo", name)

	// Directories don't count, even with a dot in the name
	sub := filepath.Join(dir, "folder.d")
	require.NoError(t, os.Mkdir(sub, 0o755))
	_, ok = FileExtension(sub, true)
	assert.False(t, ok)
	_, ok = FileNameWithoutExtension(filepath.Join(dir, "missing.txt"))
	assert.False(t, ok)
}
