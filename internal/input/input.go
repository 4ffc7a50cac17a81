package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

// Action constants using iota
const (
	ActionQuit Action = iota
	ActionScaleUp
	ActionScaleDown
	ActionRotateLeft
	ActionRotateRight
	ActionReset
	ActionReloadAssets
	ActionToggleHUD
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionQuit:         "quit",
	ActionScaleUp:      "scale_up",
	ActionScaleDown:    "scale_down",
	ActionRotateLeft:   "rotate_left",
	ActionRotateRight:  "rotate_right",
	ActionReset:        "reset",
	ActionReloadAssets: "reload_assets",
	ActionToggleHUD:    "toggle_hud",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys to logical actions and tracks press edges
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// Press counts and release flags, cleared by PostUpdate.
	// Several taps can land inside one long frame.
	presses      [ActionCount]int
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyUp, ActionScaleUp)
	im.BindKey(glfw.KeyDown, ActionScaleDown)
	im.BindKey(glfw.KeyLeft, ActionRotateLeft)
	im.BindKey(glfw.KeyRight, ActionRotateRight)
	im.BindKey(glfw.KeyR, ActionReset)
	im.BindKey(glfw.KeyF5, ActionReloadAssets)
	im.BindKey(glfw.KeyH, ActionToggleHUD)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// Repeat events keep an action held but never produce a new press edge.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.presses[act]++
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback installs the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.presses[i] = 0
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.presses[action] > 0
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Pressed returns the actions pressed this frame in Action order, an action
// appearing once per press
func (im *InputManager) Pressed() []Action {
	im.mu.RLock()
	defer im.mu.RUnlock()

	var out []Action
	for i := Action(0); i < ActionCount; i++ {
		for n := 0; n < im.presses[i]; n++ {
			out = append(out, i)
		}
	}
	return out
}
