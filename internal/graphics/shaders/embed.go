// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TexturedVertex transforms the quad by projection * model and passes texcoords through.
//
//go:embed tex.vert
var TexturedVertex string

// TexturedFragment samples tex_buffer at the interpolated texcoord.
//
//go:embed tex.frag
var TexturedFragment string

// TextVertex positions glyph quads laid out in logical pixels.
//
//go:embed text.vert
var TextVertex string

// TextFragment tints the single-channel glyph atlas with textColor.
//
//go:embed text.frag
var TextFragment string
