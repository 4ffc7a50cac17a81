package scene

import "spritedemo/internal/config"

// Controller applies keyboard steps to a sprite's transform.
type Controller struct {
	target   *Transform
	controls config.ControlsConfig
}

// NewController drives target with the given steps.
func NewController(target *Transform, controls config.ControlsConfig) *Controller {
	return &Controller{target: target, controls: controls}
}

// ScaleUp grows the sprite by one step.
func (c *Controller) ScaleUp() {
	c.target.Scale += c.controls.ScaleStep
}

// ScaleDown shrinks the sprite by one step. With ClampScale it stops at
// MinScale, otherwise it passes through zero and mirrors the sprite.
func (c *Controller) ScaleDown() {
	c.target.Scale -= c.controls.ScaleStep
	if c.controls.ClampScale && c.target.Scale < c.controls.MinScale {
		c.target.Scale = c.controls.MinScale
	}
}

// RotateLeft turns the sprite counter-clockwise by one step.
func (c *Controller) RotateLeft() {
	c.target.Rotation = normalizeDegrees(c.target.Rotation + c.controls.RotationStep)
}

// RotateRight turns the sprite clockwise by one step.
func (c *Controller) RotateRight() {
	c.target.Rotation = normalizeDegrees(c.target.Rotation - c.controls.RotationStep)
}

// Reset restores the configured initial scale and rotation.
func (c *Controller) Reset() {
	c.target.Scale = c.controls.InitialScale
	c.target.Rotation = c.controls.InitialRotation
}

// Scale returns the current scale factor.
func (c *Controller) Scale() float32 { return c.target.Scale }

// Rotation returns the current rotation in degrees.
func (c *Controller) Rotation() float32 { return c.target.Rotation }
