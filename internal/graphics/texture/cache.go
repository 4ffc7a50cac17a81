package texture

import (
	"sync"
)

// Texture is a GPU texture handle with its pixel size.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadFunc loads a texture from disk. It may return a non-zero placeholder
// together with an error; the placeholder is cached so it is released later.
type LoadFunc func(path string) (Texture, error)

// ReleaseFunc frees a texture previously returned by a LoadFunc.
type ReleaseFunc func(Texture)

// Cache memoizes loaded textures by path.
type Cache struct {
	mu       sync.RWMutex
	textures map[string]Texture
	load     LoadFunc
	release  ReleaseFunc
}

// NewCache creates a cache backed by the given loader and releaser.
func NewCache(load LoadFunc, release ReleaseFunc) *Cache {
	return &Cache{
		textures: make(map[string]Texture),
		load:     load,
		release:  release,
	}
}

// Get returns the cached texture for path, loading it on first use.
func (c *Cache) Get(path string) (Texture, error) {
	c.mu.RLock()
	if tex, ok := c.textures[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	tex, err := c.load(path)
	if tex.ID != 0 {
		c.textures[path] = tex
	}
	return tex, err
}

// Reload loads path again and swaps it in. On failure the previous texture
// stays in place and the error is returned.
func (c *Cache) Reload(path string) (Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, hadOld := c.textures[path]

	tex, err := c.load(path)
	if err != nil {
		if hadOld {
			if tex.ID != 0 {
				c.release(tex)
			}
			return old, err
		}
		if tex.ID != 0 {
			c.textures[path] = tex
		}
		return tex, err
	}

	if hadOld {
		c.release(old)
	}
	c.textures[path] = tex
	return tex, nil
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Dispose releases every cached texture and empties the cache.
func (c *Cache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path, tex := range c.textures {
		c.release(tex)
		delete(c.textures, path)
	}
}
