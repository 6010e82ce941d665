package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "item.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func putBlob(t *testing.T, root, file string) string {
	t.Helper()
	out, err := run(t, "--blobs", root, "blob", "put", file)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)
	return id
}

func TestBlobCommands(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "blobs")
	src := writePNG(t, dir)

	id := putBlob(t, root, src)

	dst := filepath.Join(dir, "copy.png")
	_, err := run(t, "--blobs", root, "blob", "get", id, "-o", dst)
	require.NoError(t, err)
	want, _ := os.ReadFile(src)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = run(t, "--blobs", root, "blob", "rm", id)
	require.NoError(t, err)

	_, err = run(t, "--blobs", root, "blob", "get", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blob not found")
}

func TestBlobPut_MissingFile(t *testing.T) {
	_, err := run(t, "--blobs", t.TempDir(), "blob", "put", "does-not-exist.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "blobs")
	id := putBlob(t, root, writePNG(t, dir))

	group := writeFile(t, dir, "snacks.yaml", fmt.Sprintf(`name: Snacks
products:
  - name: Chips
    image_id: %s
    active: true
  - name: Ghost
    image_id: missing
    active: true
  - name: Hidden
    image_id: %s
`, id, id))
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "--blobs", root, "render", "-g", group, "-o", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "item_missing Ghost")

	files, err := filepath.Glob(filepath.Join(outDir, "Snacks-*.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 960, img.Bounds().Dx())
}

func TestRenderCommand_NameStaysInOutputDir(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "blobs")
	id := putBlob(t, root, writePNG(t, dir))

	group := writeFile(t, dir, "escape.yaml", fmt.Sprintf("name: ../escape\nproducts:\n  - name: Chips\n    image_id: %s\n    active: true\n", id))
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "--blobs", root, "render", "-g", group, "-o", outDir)
	require.NoError(t, err)

	escaped, err := filepath.Glob(filepath.Join(dir, "escape-*.png"))
	require.NoError(t, err)
	assert.Empty(t, escaped)

	files, err := filepath.Glob(filepath.Join(outDir, ".._escape-*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRenderCommand_NoActiveItems(t *testing.T) {
	dir := t.TempDir()
	group := writeFile(t, dir, "empty.yaml", "name: Empty\nproducts:\n  - name: Off\n    image_id: x\n")

	_, err := run(t, "--blobs", filepath.Join(dir, "blobs"), "render", "-g", group, "-o", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active items")
}

func TestAuditCommand(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "blobs")
	src := writePNG(t, dir)
	kept := putBlob(t, root, src)
	orphan := putBlob(t, root, src)

	group := writeFile(t, dir, "g.yaml", fmt.Sprintf("name: G\nproducts:\n  - name: A\n    image_id: %s\n    active: true\n", kept))

	out, err := run(t, "--blobs", root, "audit", "-g", group)
	require.NoError(t, err)
	assert.Contains(t, out, orphan)
	assert.Contains(t, out, "scanned 2, referenced 1, orphans 1")

	out, err = run(t, "--blobs", root, "audit", "-g", group, "--apply")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 1, failed 0")

	out, err = run(t, "--blobs", root, "audit", "-g", group)
	require.NoError(t, err)
	assert.Contains(t, out, "scanned 1, referenced 1, orphans 0")
}
