package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case p := <-w.Changes():
		return p
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
		return ""
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	tex := filepath.Join(dir, "char.png")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(tex, []byte("v1"), 0644))

	w, err := NewWatcher([]string{tex}, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(tex, []byte("v2"), 0644))

	assert.Equal(t, tex, waitChange(t, w))
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	tex := filepath.Join(dir, "background.png")
	require.NoError(t, os.WriteFile(tex, []byte("v1"), 0644))

	w, err := NewWatcher([]string{tex}, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(tex, []byte{byte(i)}, 0644))
	}

	assert.Equal(t, tex, waitChange(t, w))
	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, w.Drain())
}

func TestWatcherSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	tex := filepath.Join(dir, "char.png")
	require.NoError(t, os.WriteFile(tex, []byte("v1"), 0644))

	w, err := NewWatcher([]string{tex}, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	tmp := filepath.Join(dir, "char.png.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("v2"), 0644))
	require.NoError(t, os.Rename(tmp, tex))

	assert.Equal(t, tex, waitChange(t, w))
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "nope", "char.png")}, DefaultDebounce)
	assert.Error(t, err)
}

func TestWatcherCloseClosesChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{filepath.Join(dir, "a.png")}, DefaultDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	assert.False(t, ok)
}
