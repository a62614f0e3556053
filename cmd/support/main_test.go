package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `<svg xmlns="http://www.w3.org/2000/svg">
  <circle cx="0" cy="0" r="5"/>
  <line x1="0" y1="10" x2="0" y2="0"/>
  <circle class="expected" cx="0" cy="5" r="0.1"/>
</svg>`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"--no-color"}, args...), strings.NewReader(stdin), &out)
	return out.String(), err
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.svg")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))
	return path
}

func TestIntersect(t *testing.T) {
	out, err := runCLI(t, "", "intersect", "--check", writeScene(t))
	require.NoError(t, err)
	assert.Equal(t, "(0, 5)\n", out)
}

func TestLine(t *testing.T) {
	out, err := runCLI(t, "", "line", "--", "-10", "0", "10", "0", "0", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "(-5, 0)\n(5, 0)\n", out)

	out, err = runCLI(t, "", "line", "--segment", "--", "0", "10", "0", "20", "0", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "no intersection\n", out)

	_, err = runCLI(t, "", "line", "1", "2")
	assert.Error(t, err)
}

func TestDraw(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "scene.png")
	svg := filepath.Join(dir, "scene.svg")
	_, err := runCLI(t, "", "draw", writeScene(t), "-o", png, "--svg", svg, "--scale", "4")
	require.NoError(t, err)

	raw, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))

	out, err := runCLI(t, "", "intersect", "--check", svg)
	require.NoError(t, err)
	assert.Equal(t, "(0, 5)\n", out)
}

func TestDegreesAndDistance(t *testing.T) {
	out, err := runCLI(t, "", "degrees", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "90\n", out)

	out, err = runCLI(t, "", "degrees", "--rotation", "ccw", "1", "1", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "315\n", out)

	out, err = runCLI(t, "", "distance", "0", "0", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = runCLI(t, "", "distance", "--line", "0", "5", "0", "0", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestOval(t *testing.T) {
	out, err := runCLI(t, "", "oval", "--distance", "1000", "0", "0", "10", "10")
	require.NoError(t, err)
	assert.Equal(t, "spacing too wide\n", out)

	out, err = runCLI(t, "", "oval", "--distance", "1", "0", "0", "10", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(10, 5)\n"), out)
}

func TestSort(t *testing.T) {
	out, err := runCLI(t, "file10.txt\nfile2.txt\nFile1.txt\n", "sort", "--files")
	require.NoError(t, err)
	assert.Equal(t, "File1.txt\nfile2.txt\nfile10.txt\n", out)
}

func TestFileCommands(t *testing.T) {
	dir := t.TempDir()
	hello := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(hello, []byte("hello world"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	out, err := runCLI(t, "", "md5", hello)
	require.NoError(t, err)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3\n", out)

	out, err = runCLI(t, "", "ls", "--ext", "TXT", dir)
	require.NoError(t, err)
	assert.Equal(t, hello+"\n", out)

	out, err = runCLI(t, "", "ls", "--dirs", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub")+"\n", out)

	out, err = runCLI(t, "", "cat", hello)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)

	out, err = runCLI(t, "", "info", hello)
	require.NoError(t, err)
	assert.Contains(t, out, "name: hello.txt\nsize: 11\n")

	copied := filepath.Join(dir, "copy.txt")
	_, err = runCLI(t, "", "fetch", hello, copied)
	require.NoError(t, err)
	raw, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(raw))
}

func TestSanitize(t *testing.T) {
	out, err := runCLI(t, "", "sanitize", "--ext", "txt", "a:b")
	require.NoError(t, err)
	assert.Equal(t, "ab.txt\nremoved illegal characters\n", out)
}

func TestMCC(t *testing.T) {
	out, err := runCLI(t, "", "mcc", "460")
	require.NoError(t, err)
	assert.Equal(t, "CN China\n", out)

	t.Setenv("SUPPORT_MCC", "289")
	out, err = runCLI(t, "", "mcc")
	require.NoError(t, err)
	assert.Equal(t, "AB Abkhazia\n", out)

	_, err = runCLI(t, "", "mcc", "999")
	assert.Error(t, err)
}

func TestDip(t *testing.T) {
	out, err := runCLI(t, "", "dip", "--density", "1.5", "1")
	require.NoError(t, err)
	assert.Equal(t, "dimension: 1.5\nsize: 2\noffset: 1\n", out)

	t.Setenv("SUPPORT_DENSITY", "2")
	out, err = runCLI(t, "", "dip", "3")
	require.NoError(t, err)
	assert.Equal(t, "dimension: 6\nsize: 6\noffset: 6\n", out)
}

func TestChars(t *testing.T) {
	out, err := runCLI(t, "", "chars", "中a")
	require.NoError(t, err)
	assert.Equal(t, "'中' U+4E2D chinese,cjk\n'a' U+0061 \n", out)
}

func TestID(t *testing.T) {
	out, err := runCLI(t, "", "id", "--seed", "1", "--fold", "a")
	require.NoError(t, err)
	assert.Equal(t, "128\n", out)

	out, err = runCLI(t, "", "id")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestAccount(t *testing.T) {
	store := filepath.Join(t.TempDir(), "account.yaml")
	_, err := runCLI(t, "", "account", "--store", store, "set", "name", "alice")
	require.NoError(t, err)

	out, err := runCLI(t, "", "account", "--store", store, "get", "name")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	out, err = runCLI(t, "", "account", "--store", store, "get", "--default", "none", "email")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestAnimate(t *testing.T) {
	out, err := runCLI(t, "", "animate", "--duration", "30ms", "--interpolator", "linear", "--width", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\r[##########] 100%\n"), "%q", out)
}

func TestUnknownFlag(t *testing.T) {
	_, err := runCLI(t, "", "intersect", "--bogus")
	assert.Error(t, err)
}
