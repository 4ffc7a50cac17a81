package texture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGPU struct {
	next     uint32
	loads    map[string]int
	released []uint32
	fail     map[string]bool
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{loads: map[string]int{}, fail: map[string]bool{}}
}

var errDecode = errors.New("decode failed")

// load mimics LoadTexture: an id is always generated, even when decoding fails.
func (g *fakeGPU) load(path string) (Texture, error) {
	g.loads[path]++
	g.next++
	tex := Texture{ID: g.next, Width: 4, Height: 4}
	if g.fail[path] {
		return Texture{ID: tex.ID}, errDecode
	}
	return tex, nil
}

func (g *fakeGPU) release(tex Texture) {
	g.released = append(g.released, tex.ID)
}

func TestCacheGetLoadsOnce(t *testing.T) {
	gpu := newFakeGPU()
	c := NewCache(gpu.load, gpu.release)

	a, err := c.Get("bg.png")
	require.NoError(t, err)
	b, err := c.Get("bg.png")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 1, gpu.loads["bg.png"])
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetKeepsPlaceholderOnFailure(t *testing.T) {
	gpu := newFakeGPU()
	gpu.fail["char.png"] = true
	c := NewCache(gpu.load, gpu.release)

	tex, err := c.Get("char.png")
	assert.ErrorIs(t, err, errDecode)
	assert.NotZero(t, tex.ID)

	// Later frames reuse the placeholder instead of retrying every frame.
	cached, err := c.Get("char.png")
	assert.NoError(t, err)
	assert.Equal(t, tex.ID, cached.ID)
	assert.Equal(t, 1, gpu.loads["char.png"])
}

func TestCacheReloadSwapsAndReleasesOld(t *testing.T) {
	gpu := newFakeGPU()
	c := NewCache(gpu.load, gpu.release)

	first, err := c.Get("bg.png")
	require.NoError(t, err)

	second, err := c.Reload("bg.png")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []uint32{first.ID}, gpu.released)

	cached, err := c.Get("bg.png")
	require.NoError(t, err)
	assert.Equal(t, second.ID, cached.ID)
	assert.Equal(t, 2, gpu.loads["bg.png"])
}

func TestCacheReloadFailureKeepsOld(t *testing.T) {
	gpu := newFakeGPU()
	c := NewCache(gpu.load, gpu.release)

	first, err := c.Get("bg.png")
	require.NoError(t, err)

	gpu.fail["bg.png"] = true
	got, err := c.Reload("bg.png")
	assert.ErrorIs(t, err, errDecode)
	assert.Equal(t, first.ID, got.ID)

	// The placeholder from the failed attempt is freed, the old texture is not.
	require.Len(t, gpu.released, 1)
	assert.NotEqual(t, first.ID, gpu.released[0])

	cached, err := c.Get("bg.png")
	require.NoError(t, err)
	assert.Equal(t, first.ID, cached.ID)
	assert.Equal(t, 2, gpu.loads["bg.png"])
}

func TestCacheDispose(t *testing.T) {
	gpu := newFakeGPU()
	c := NewCache(gpu.load, gpu.release)

	_, _ = c.Get("bg.png")
	_, _ = c.Get("char.png")
	c.Dispose()

	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []uint32{1, 2}, gpu.released)
}
