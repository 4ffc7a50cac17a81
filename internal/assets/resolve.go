// Package assets locates demo assets on disk and watches them for changes.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns path if it exists as given, otherwise the same relative
// path under the executable's directory.
func Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
	}

	exe, err := os.Executable()
	if err == nil {
		return resolveUnder(filepath.Dir(exe), path)
	}
	return "", fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
}

func resolveUnder(dir, path string) (string, error) {
	candidate := filepath.Join(dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
}
