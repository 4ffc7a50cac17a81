// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate when a setting is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Assets   AssetsConfig   `yaml:"assets"`
	Controls ControlsConfig `yaml:"controls"`
	HUD      HUDConfig      `yaml:"hud"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds window and presentation settings.
// Width and Height are also the logical size of the orthographic projection.
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	Resizable  bool       `yaml:"resizable"`
	ClearColor [4]float32 `yaml:"clear_color,flow"` // RGBA in [0, 1]
}

// AssetsConfig holds texture and shader paths.
// Empty shader paths select the embedded shaders.
type AssetsConfig struct {
	Background     string `yaml:"background"`
	Character      string `yaml:"character"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
	HotReload      bool   `yaml:"hot_reload"`
}

// ControlsConfig holds the keyboard transform steps.
// Scale is unbounded unless ClampScale is set: below zero the sprite mirrors.
type ControlsConfig struct {
	ScaleStep       float32 `yaml:"scale_step"`
	RotationStep    float32 `yaml:"rotation_step"` // degrees
	ClampScale      bool    `yaml:"clamp_scale"`
	MinScale        float32 `yaml:"min_scale"` // only with clamp_scale
	InitialScale    float32 `yaml:"initial_scale"`
	InitialRotation float32 `yaml:"initial_rotation"`
}

// HUDConfig holds the status overlay settings.
type HUDConfig struct {
	Show     bool `yaml:"show"`
	FontSize int  `yaml:"font_size"` // pixels
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the fixed demo scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Texturas",
			VSync:     true,
			FPSLimit:  0,
			Resizable: true,
		},
		Assets: AssetsConfig{
			Background: "assets/textures/background.png",
			Character:  "assets/textures/char.png",
		},
		Controls: ControlsConfig{
			ScaleStep:       0.1,
			RotationStep:    10,
			MinScale:        0.1,
			InitialScale:    1,
			InitialRotation: 0,
		},
		HUD: HUDConfig{
			Show:     true,
			FontSize: 16,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that the config can drive a window and a scene.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Window.FPSLimit)
	case !unitRange(c.Window.ClearColor[:]):
		return fmt.Errorf("%w: clear_color %v outside [0, 1]", ErrInvalid, c.Window.ClearColor)
	case c.Assets.Background == "":
		return fmt.Errorf("%w: background texture path is empty", ErrInvalid)
	case c.Assets.Character == "":
		return fmt.Errorf("%w: character texture path is empty", ErrInvalid)
	case (c.Assets.VertexShader == "") != (c.Assets.FragmentShader == ""):
		return fmt.Errorf("%w: vertex and fragment shader paths must be set together", ErrInvalid)
	case c.Controls.ScaleStep <= 0:
		return fmt.Errorf("%w: scale_step %v", ErrInvalid, c.Controls.ScaleStep)
	case c.Controls.RotationStep <= 0:
		return fmt.Errorf("%w: rotation_step %v", ErrInvalid, c.Controls.RotationStep)
	case c.HUD.FontSize <= 0:
		return fmt.Errorf("%w: hud font_size %d", ErrInvalid, c.HUD.FontSize)
	case c.Controls.ClampScale && c.Controls.InitialScale < c.Controls.MinScale:
		return fmt.Errorf("%w: initial_scale %v below min_scale %v", ErrInvalid, c.Controls.InitialScale, c.Controls.MinScale)
	}
	return nil
}

func unitRange(vs []float32) bool {
	for _, v := range vs {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
