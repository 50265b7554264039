package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/clerk")
	t.Setenv("PAPERS_DIR", "/srv/papers")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/home/clerk", ExpandPath("~"))
	assert.Equal(t, "/home/clerk/index.xml", ExpandPath("~/index.xml"))
	assert.Equal(t, "/srv/papers/index.xml", ExpandPath("$PAPERS_DIR/index.xml"))
	assert.Equal(t, "relative/index.xml", ExpandPath("relative/index.xml"))
}

func TestResolveOutputPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "for-id7.xml", ResolveOutputPath("", "for-id7.xml"))
	assert.Equal(t, filepath.Join(dir, "for-id7.xml"), ResolveOutputPath(dir, "for-id7.xml"))
	assert.Equal(t, filepath.Join(dir, "custom.xml"), ResolveOutputPath(filepath.Join(dir, "custom.xml"), "for-id7.xml"))
}

func TestSiblingPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "raw.xml", SiblingPath("", "raw.xml"))
	assert.Equal(t, filepath.Join(dir, "raw.xml"), SiblingPath(dir, "raw.xml"))
	assert.Equal(t, filepath.Join(dir, "raw.xml"), SiblingPath(filepath.Join(dir, "index.xml"), "raw.xml"))
}
