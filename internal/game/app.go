package game

import (
	"context"
	"slices"
	"time"

	"spritedemo/internal/assets"
	"spritedemo/internal/config"
	"spritedemo/internal/graphics/camera"
	"spritedemo/internal/graphics/renderables/overlay"
	"spritedemo/internal/graphics/renderables/sprites"
	"spritedemo/internal/graphics/renderer"
	"spritedemo/internal/input"
	"spritedemo/internal/logger"
	"spritedemo/internal/profiling"
	"spritedemo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// slowFrame is the processing time above which a frame breakdown is logged.
const slowFrame = 50 * time.Millisecond

// App owns the window and drives the update/render loop
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	scene      *scene.Scene
	controller *scene.Controller
	renderer   *renderer.Renderer
	sprites    *sprites.Sprites
	overlay    *overlay.Overlay
	watcher    *assets.Watcher

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
	lastTime   time.Time
	log        *zap.Logger
}

// NewApp builds the scene and GPU resources. The window's GL context must be current.
func NewApp(window *glfw.Window, cfg *config.Config) (*App, error) {
	log := logger.Named("app")

	resolved := *cfg
	resolved.Assets = resolveAssets(cfg.Assets, log)
	cfg = &resolved

	sc := scene.New(cfg)

	spriteRenderer := sprites.NewSprites(cfg.Assets, sc.TexturePaths())
	overlayRenderer := overlay.NewOverlay(cfg.HUD.FontSize, cfg.HUD.Show)
	r, err := renderer.NewRenderer(camera.New2D(cfg.Window.Width, cfg.Window.Height), spriteRenderer, overlayRenderer)
	if err != nil {
		return nil, err
	}
	cc := cfg.Window.ClearColor
	r.SetClearColor(cc[0], cc[1], cc[2], cc[3])

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	now := time.Now()
	a := &App{
		window:       window,
		inputManager: im,
		scene:        sc,
		controller:   scene.NewController(&sc.Character.Transform, cfg.Controls),
		renderer:     r,
		sprites:      spriteRenderer,
		overlay:      overlayRenderer,
		fpsLimiter:   NewFPSLimiter(),
		fpsCounter:   NewFPSCounter(now, time.Second),
		lastTime:     now,
		log:          log,
	}

	// Viewport follows the framebuffer, which differs from the window size on HiDPI displays
	fbWidth, fbHeight := window.GetFramebufferSize()
	r.SetViewport(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.SetViewport(width, height)
	})

	if cfg.Assets.HotReload {
		watched := append(sc.TexturePaths(), spriteRenderer.ShaderPaths()...)
		a.watcher, err = assets.NewWatcher(watched, assets.DefaultDebounce)
		if err != nil {
			// Hot reload is a convenience, keep running without it
			a.log.Warn("hot reload disabled", zap.Error(err))
			a.watcher = nil
		} else {
			a.log.Info("hot reload enabled", zap.Strings("paths", watched))
		}
	}

	return a, nil
}

// resolveAssets locates each asset next to the executable when it is not
// found relative to the working directory. Missing files keep their path so
// the load failure is reported by the renderer.
func resolveAssets(ac config.AssetsConfig, log *zap.Logger) config.AssetsConfig {
	for _, p := range []*string{&ac.Background, &ac.Character, &ac.VertexShader, &ac.FragmentShader} {
		if *p == "" {
			continue
		}
		path, err := assets.Resolve(*p)
		if err != nil {
			log.Debug("asset not resolved", zap.String("path", *p), zap.Error(err))
			continue
		}
		*p = path
	}
	return ac
}

// Run loops until the window is closed or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			a.log.Info("shutting down", zap.Error(ctx.Err()))
			a.window.SetShouldClose(true)
			return nil
		default:
		}
		a.tick()
	}
	return nil
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInput()
	a.applyReloads()

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render(a.scene, dt) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if processing := time.Since(startTick); processing > slowFrame {
		a.log.Debug("slow frame",
			zap.Duration("took", processing),
			zap.Duration("glfw", profiling.SumWithPrefix("glfw.")),
			zap.String("top", profiling.TopN(3)))
	}

	a.inputManager.PostUpdate()

	if fps, ok := a.fpsCounter.Frame(time.Now()); ok {
		a.log.Debug("fps", zap.Int("fps", fps))
	}

	iconified := a.window.GetAttrib(glfw.Iconified) == glfw.True
	a.fpsLimiter.Wait(iconified)
}

func (a *App) handleInput() {
	for _, action := range a.inputManager.Pressed() {
		switch action {
		case input.ActionQuit:
			a.window.SetShouldClose(true)
		case input.ActionScaleUp:
			a.controller.ScaleUp()
		case input.ActionScaleDown:
			a.controller.ScaleDown()
		case input.ActionRotateLeft:
			a.controller.RotateLeft()
		case input.ActionRotateRight:
			a.controller.RotateRight()
		case input.ActionReset:
			a.controller.Reset()
		case input.ActionReloadAssets:
			_ = a.sprites.ReloadAll(a.scene.TexturePaths())
			continue
		case input.ActionToggleHUD:
			a.log.Debug("hud toggled", zap.Bool("visible", a.overlay.Toggle()))
			continue
		}
		a.log.Debug("action",
			zap.Stringer("action", action),
			zap.Float32("scale", a.controller.Scale()),
			zap.Float32("rotation", a.controller.Rotation()))
	}
}

// applyReloads runs on the main thread since GL objects are only valid there
func (a *App) applyReloads() {
	if a.watcher == nil {
		return
	}
	shaderPaths := a.sprites.ShaderPaths()
	shaderChanged := false
	for _, path := range a.watcher.Drain() {
		if slices.Contains(shaderPaths, path) {
			shaderChanged = true
			continue
		}
		_ = a.sprites.ReloadTexture(path)
	}
	if shaderChanged {
		_ = a.sprites.ReloadShader()
	}
}

// Close releases GPU resources and stops the asset watcher
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	a.renderer.Dispose()
}
