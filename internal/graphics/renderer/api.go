package renderer

import (
	"spritedemo/internal/graphics/camera"
	"spritedemo/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *camera.Camera2D
	Scene  *scene.Scene
	DT     float64
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
