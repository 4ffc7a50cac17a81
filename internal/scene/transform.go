// Package scene holds the fixed two-sprite scene and the transforms that
// place each sprite's unit quad in logical pixel space.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform places a unit quad: translate, then rotate about Z, then scale.
type Transform struct {
	Position mgl32.Vec2 // centre, in logical pixels
	Size     mgl32.Vec2 // size at Scale == 1
	Rotation float32    // degrees, counter-clockwise
	Scale    float32
	Depth    float32 // Z scale
}

// Model returns T(position) * Rz(rotation) * S(size*scale, depth).
func (t Transform) Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), 0)
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation))
	scale := mgl32.Scale3D(t.Size.X()*t.Scale, t.Size.Y()*t.Scale, t.Depth)
	return translate.Mul4(rotate).Mul4(scale)
}

// normalizeDegrees keeps an accumulated angle within (-360, 360).
func normalizeDegrees(deg float32) float32 {
	return float32(math.Mod(float64(deg), 360))
}
