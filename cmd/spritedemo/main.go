// Package main is the entry point for the sprite demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"spritedemo/internal/config"
	"spritedemo/internal/game"
	"spritedemo/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	// GLFW and GL calls must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("saving config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", config.UserConfigPath()))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("sprite demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("window closed")
}

func run(cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	config.ApplyRuntime(cfg)

	app, err := game.NewApp(window, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
