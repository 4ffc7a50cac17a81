package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"spritedemo/internal/config"
)

func newTestController() (*Controller, *Transform) {
	cfg := config.Default()
	sc := New(cfg)
	return NewController(&sc.Character.Transform, cfg.Controls), &sc.Character.Transform
}

func TestScaleSteps(t *testing.T) {
	c, tr := newTestController()

	c.ScaleUp()
	c.ScaleUp()
	assert.InDelta(t, 1.2, tr.Scale, 1e-5)

	c.ScaleDown()
	assert.InDelta(t, 1.1, c.Scale(), 1e-5)
}

func TestScaleDownPassesThroughZero(t *testing.T) {
	c, tr := newTestController()

	for i := 0; i < 11; i++ {
		c.ScaleDown()
	}
	assert.InDelta(t, -0.1, tr.Scale, 1e-5)

	// A mirrored sprite keeps its size, flipped on both axes
	corner := tr.Model().Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1})
	assert.InDelta(t, 395, corner.X(), 1e-3)
	assert.InDelta(t, 295, corner.Y(), 1e-3)
}

func TestScaleDownClampsWhenEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.ClampScale = true
	sc := New(cfg)
	c := NewController(&sc.Character.Transform, cfg.Controls)

	for i := 0; i < 50; i++ {
		c.ScaleDown()
	}
	assert.InDelta(t, 0.1, c.Scale(), 1e-6)
	assert.Greater(t, c.Scale(), float32(0))
}

func TestRotationSteps(t *testing.T) {
	c, tr := newTestController()

	c.RotateLeft()
	assert.InDelta(t, 10, tr.Rotation, 1e-5)

	c.RotateRight()
	c.RotateRight()
	assert.InDelta(t, -10, c.Rotation(), 1e-5)
}

func TestRotationStaysBounded(t *testing.T) {
	c, tr := newTestController()

	for i := 0; i < 37; i++ {
		c.RotateLeft()
	}
	assert.InDelta(t, 10, tr.Rotation, 1e-3)

	for i := 0; i < 74; i++ {
		c.RotateRight()
	}
	assert.InDelta(t, -10, tr.Rotation, 1e-3)
}

func TestReset(t *testing.T) {
	c, tr := newTestController()

	c.ScaleUp()
	c.RotateLeft()
	c.Reset()

	assert.InDelta(t, 1, tr.Scale, 1e-6)
	assert.InDelta(t, 0, tr.Rotation, 1e-6)
}
