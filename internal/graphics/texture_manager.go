package graphics

import "spritedemo/internal/graphics/texture"

// NewTextureCache returns a path-keyed cache that uploads through LoadTexture.
// It must only be used on the thread that owns the GL context.
func NewTextureCache() *texture.Cache {
	return texture.NewCache(LoadTexture, DeleteTexture)
}
