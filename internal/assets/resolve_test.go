package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestResolveMissingAbsolute(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveUnder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets", "textures"), 0755))
	rel := filepath.Join("assets", "textures", "char.png")
	require.NoError(t, os.WriteFile(filepath.Join(dir, rel), nil, 0644))

	got, err := resolveUnder(dir, rel)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, rel), got)

	_, err = resolveUnder(dir, "other.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
