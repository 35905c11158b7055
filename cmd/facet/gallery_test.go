package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return buf.String()
}

func TestGalleryCommandWritesPage(t *testing.T) {
	output := runCommand(t, "gallery", "--title", "sample page")

	assert.Contains(t, output, "<!doctype html>")
	assert.Contains(t, output, "<title>sample page</title>")
	assert.Contains(t, output, "font-size: 34px")
	assert.Contains(t, output, "--icon-weight: 3px")
}

func TestGalleryCommandScaleFlag(t *testing.T) {
	output := runCommand(t, "gallery", "--scale", "2")

	assert.Contains(t, output, "font-size: 68px")
	assert.NotContains(t, output, "font-size: 28px")
}

func TestGalleryCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.html")
	runCommand(t, "gallery", "--out", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!doctype html>")
}

func TestGalleryCommandReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: 1.5\noutput:\n  title: configured\n"), 0o644))

	output := runCommand(t, "--config", path, "gallery")

	assert.Contains(t, output, "<title>configured</title>")
	assert.Contains(t, output, "font-size: 51px")
}

func TestGalleryCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: -2\n"), 0o644))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "gallery"})

	require.Error(t, root.Execute())
}
