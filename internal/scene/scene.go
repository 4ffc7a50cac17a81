package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"spritedemo/internal/config"
)

// Character quad size in logical pixels at scale 1.
const characterSize = 100

// Sprite is a textured quad.
type Sprite struct {
	Name        string
	TexturePath string
	Transform   Transform
}

// Scene is the demo's fixed content: a full-screen background and a
// character sprite at the centre.
type Scene struct {
	Background *Sprite
	Character  *Sprite
}

// New builds the scene for the configured logical size and textures.
func New(cfg *config.Config) *Scene {
	w := float32(cfg.Window.Width)
	h := float32(cfg.Window.Height)
	center := mgl32.Vec2{w / 2, h / 2}

	return &Scene{
		Background: &Sprite{
			Name:        "background",
			TexturePath: cfg.Assets.Background,
			Transform: Transform{
				Position: center,
				Size:     mgl32.Vec2{w, h},
				Scale:    1,
				Depth:    1,
			},
		},
		Character: &Sprite{
			Name:        "character",
			TexturePath: cfg.Assets.Character,
			Transform: Transform{
				Position: center,
				Size:     mgl32.Vec2{characterSize, characterSize},
				Rotation: cfg.Controls.InitialRotation,
				Scale:    cfg.Controls.InitialScale,
				Depth:    0.5,
			},
		},
	}
}

// Sprites returns the sprites in draw order, back to front.
func (s *Scene) Sprites() []*Sprite {
	return []*Sprite{s.Background, s.Character}
}

// TexturePaths returns the distinct texture paths used by the scene.
func (s *Scene) TexturePaths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, sp := range s.Sprites() {
		if !seen[sp.TexturePath] {
			seen[sp.TexturePath] = true
			paths = append(paths, sp.TexturePath)
		}
	}
	return paths
}

// StatusLines describes the character transform for the on-screen overlay.
func (s *Scene) StatusLines() []string {
	tr := s.Character.Transform
	return []string{
		fmt.Sprintf("scale %.1f  rotation %.0f deg", tr.Scale, tr.Rotation),
		"Up/Down scale  Left/Right rotate  R reset  H hide",
	}
}
