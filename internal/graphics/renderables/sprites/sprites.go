// Package sprites draws the scene's sprites as textured quads.
package sprites

import (
	"errors"

	"spritedemo/internal/config"
	"spritedemo/internal/graphics"
	"spritedemo/internal/graphics/renderer"
	"spritedemo/internal/graphics/shaders"
	"spritedemo/internal/graphics/texture"
	"spritedemo/internal/logger"
	"spritedemo/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Sprites renders every sprite of the scene with one draw call each
type Sprites struct {
	assets   config.AssetsConfig
	preload  []string
	shader   *graphics.Shader
	quad     *graphics.Quad
	textures *texture.Cache
	log      *zap.Logger
}

// NewSprites creates the renderable. Textures in preload are uploaded at Init.
func NewSprites(assets config.AssetsConfig, preload []string) *Sprites {
	return &Sprites{
		assets:  assets,
		preload: preload,
		log:     logger.Named("sprites"),
	}
}

// Init compiles the shader, uploads the quad and loads textures.
// A texture that fails to load is logged and drawn as an empty texture.
func (s *Sprites) Init() error {
	shader, err := s.buildShader()
	if err != nil {
		return err
	}
	s.shader = shader
	s.quad = graphics.NewQuad()
	s.textures = graphics.NewTextureCache()

	for _, path := range s.preload {
		tex, err := s.textures.Get(path)
		if err != nil {
			s.log.Warn("Failed to load texture", zap.String("path", path), zap.Error(err))
			continue
		}
		s.log.Info("texture loaded", zap.String("path", path), zap.Int("width", tex.Width), zap.Int("height", tex.Height))
	}
	return nil
}

func (s *Sprites) buildShader() (*graphics.Shader, error) {
	if s.assets.VertexShader != "" {
		return graphics.NewShader(s.assets.VertexShader, s.assets.FragmentShader)
	}
	return graphics.NewShaderFromSource(shaders.TexturedVertex, shaders.TexturedFragment)
}

// Render draws the scene's sprites back to front
func (s *Sprites) Render(ctx renderer.RenderContext) {
	defer profiling.Track("sprites.Render")()

	s.shader.Use()
	s.shader.SetInt("tex_buffer", 0)
	s.shader.SetMatrix4("projection", ctx.Proj)

	s.quad.Bind()
	for _, sp := range ctx.Scene.Sprites() {
		tex, err := s.textures.Get(sp.TexturePath)
		if err != nil {
			s.log.Warn("Failed to load texture", zap.String("path", sp.TexturePath), zap.Error(err))
		}
		gl.BindTexture(gl.TEXTURE_2D, tex.ID)
		s.shader.SetMatrix4("model", sp.Transform.Model())
		s.quad.Draw()
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	s.quad.Unbind()
}

// ReloadTexture re-reads one texture from disk, keeping the old one on failure
func (s *Sprites) ReloadTexture(path string) error {
	if _, err := s.textures.Reload(path); err != nil {
		s.log.Warn("texture reload failed", zap.String("path", path), zap.Error(err))
		return err
	}
	s.log.Info("texture reloaded", zap.String("path", path))
	return nil
}

// ReloadShader recompiles the shader from disk. Embedded shaders are left alone.
func (s *Sprites) ReloadShader() error {
	if err := s.shader.Reload(); err != nil {
		s.log.Warn("shader reload failed", zap.Error(err))
		return err
	}
	if len(s.ShaderPaths()) > 0 {
		s.log.Info("shader reloaded")
	}
	return nil
}

// ReloadAll reloads the shader and the given textures
func (s *Sprites) ReloadAll(paths []string) error {
	errs := []error{s.ReloadShader()}
	for _, p := range paths {
		errs = append(errs, s.ReloadTexture(p))
	}
	return errors.Join(errs...)
}

// ShaderPaths returns the shader source files in use, nil when embedded
func (s *Sprites) ShaderPaths() []string {
	if s.shader == nil {
		return nil
	}
	vertexPath, fragmentPath := s.shader.Paths()
	if vertexPath == "" {
		return nil
	}
	return []string{vertexPath, fragmentPath}
}

// SetViewport is a no-op: the projection is fixed to the logical size
func (s *Sprites) SetViewport(width, height int) {}

// Dispose frees the quad's VAO/VBO, textures and shader program
func (s *Sprites) Dispose() {
	if s.quad != nil {
		s.quad.Dispose()
	}
	if s.textures != nil {
		s.textures.Dispose()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
