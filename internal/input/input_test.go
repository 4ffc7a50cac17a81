package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	cases := map[glfw.Key]Action{
		glfw.KeyEscape: ActionQuit,
		glfw.KeyUp:     ActionScaleUp,
		glfw.KeyDown:   ActionScaleDown,
		glfw.KeyLeft:   ActionRotateLeft,
		glfw.KeyRight:  ActionRotateRight,
		glfw.KeyR:      ActionReset,
		glfw.KeyF5:     ActionReloadAssets,
		glfw.KeyH:      ActionToggleHUD,
	}

	for key, action := range cases {
		im := NewInputManager()
		im.HandleKeyEvent(key, glfw.Press)
		assert.True(t, im.JustPressed(action), "key %v should press %v", key, action)
		assert.Equal(t, []Action{action}, im.Pressed())
	}
}

func TestPressIsEdgeTriggered(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	assert.True(t, im.JustPressed(ActionScaleUp))
	assert.True(t, im.IsActive(ActionScaleUp))

	im.PostUpdate()
	assert.False(t, im.JustPressed(ActionScaleUp))
	assert.True(t, im.IsActive(ActionScaleUp))

	// Auto-repeat while held does not count as a new press
	im.HandleKeyEvent(glfw.KeyUp, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionScaleUp))

	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	assert.True(t, im.JustReleased(ActionScaleUp))
	assert.False(t, im.IsActive(ActionScaleUp))

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	assert.True(t, im.JustPressed(ActionScaleUp))
}

func TestTapsWithinOneFrame(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Repeat)

	assert.Equal(t, []Action{ActionScaleUp, ActionScaleUp, ActionRotateLeft}, im.Pressed())
	assert.True(t, im.JustReleased(ActionScaleUp))

	im.PostUpdate()
	assert.Empty(t, im.Pressed())
	assert.True(t, im.IsActive(ActionScaleUp))
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	assert.Empty(t, im.Pressed())
}

func TestRebind(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyUp)
	im.BindKey(glfw.KeyW, ActionScaleUp)

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	assert.False(t, im.JustPressed(ActionScaleUp))

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, im.JustPressed(ActionScaleUp))
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyQ, ActionCount)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)

	assert.False(t, im.JustPressed(ActionCount))
	assert.False(t, im.IsActive(Action(-1)))
	assert.Equal(t, "unknown", ActionCount.String())
	assert.Equal(t, "scale_up", ActionScaleUp.String())
}
