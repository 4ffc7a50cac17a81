package main

import (
	"fmt"

	"spritedemo/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, boolHint(wc.Resizable))

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		// FPS limiter paces frames instead
		glfw.SwapInterval(0)
	}

	return window, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
