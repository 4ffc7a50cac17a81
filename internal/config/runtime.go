package config

import "sync"

// RuntimeSettings holds values that may change while the demo runs
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
}

var globalRuntimeSettings = &RuntimeSettings{}

// GetFPSLimit returns the current frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// ApplyRuntime copies the startup values of cfg into the runtime settings
func ApplyRuntime(cfg *Config) {
	SetFPSLimit(cfg.Window.FPSLimit)
}
