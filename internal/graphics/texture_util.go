package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"spritedemo/internal/graphics/texture"
)

// LoadTexture creates a 2D texture and fills it from the image at path.
// The texture id is generated before decoding, so on failure a valid but
// empty texture is returned alongside the error.
func LoadTexture(path string) (texture.Texture, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	data, err := texture.DecodeFile(path)
	if err != nil {
		return texture.Texture{ID: id}, fmt.Errorf("failed to load texture: %w", err)
	}
	if len(data.Pix) == 0 {
		return texture.Texture{ID: id}, fmt.Errorf("failed to load texture: %s is empty", path)
	}

	format := uint32(gl.RGBA)
	if data.Channels == 3 {
		format = gl.RGB
	}

	// RGB rows are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(format),
		int32(data.Width),
		int32(data.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(data.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return texture.Texture{ID: id, Width: data.Width, Height: data.Height}, nil
}

// DeleteTexture frees a texture created by LoadTexture
func DeleteTexture(tex texture.Texture) {
	if tex.ID != 0 {
		gl.DeleteTextures(1, &tex.ID)
	}
}
