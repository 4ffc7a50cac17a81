package renderer

import (
	"fmt"

	"spritedemo/internal/graphics/camera"
	"spritedemo/internal/logger"
	"spritedemo/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera2D

	clearColor [4]float32
}

// NewRenderer configures global GL state and initializes rs in order
func NewRenderer(cam *camera.Camera2D, rs ...Renderable) (*Renderer, error) {
	logger.Info("OpenGL context",
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	// Sprites are alpha-blended and drawn back to front, no depth test
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)

	r := &Renderer{
		renderables: rs,
		camera:      cam,
	}

	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("initializing renderable %d: %w", i, err)
		}
	}

	return r, nil
}

// Render clears the color buffer and draws every renderable
func (r *Renderer) Render(sc *scene.Scene, dt float64) {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  sc,
		DT:     dt,
		Proj:   r.camera.Projection(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetClearColor changes the clear color (default transparent black)
func (r *Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.clearColor = [4]float32{red, green, blue, alpha}
}

// SetViewport resizes the GL viewport to the framebuffer size in pixels.
// The projection keeps its logical size so the scene stretches with the window.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
