// Package camera provides the orthographic projection used for screen-space sprites.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera2D maps a logical pixel space with its origin at the bottom-left
// corner onto clip space.
type Camera2D struct {
	Width     float32
	Height    float32
	NearPlane float32
	FarPlane  float32
}

// New2D creates a camera covering width x height logical pixels.
func New2D(width, height int) *Camera2D {
	return &Camera2D{
		Width:     float32(width),
		Height:    float32(height),
		NearPlane: -1,
		FarPlane:  1,
	}
}

// Projection returns ortho(0, w, 0, h, near, far).
func (c *Camera2D) Projection() mgl32.Mat4 {
	return mgl32.Ortho(0, c.Width, 0, c.Height, c.NearPlane, c.FarPlane)
}
