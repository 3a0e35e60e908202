// Package assets locates the directory holding the shader sources and
// images the later example scenes load at runtime.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirName is the asset directory shipped with the repository.
const dirName = "assets"

// Dir returns the asset directory: assets/ under the current working
// directory when running from a source checkout, otherwise assets/ next to
// the installed executable.
func Dir() (string, error) {
	if isDir(dirName) {
		return dirName, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	dir := filepath.Join(filepath.Dir(exe), dirName)
	if isDir(dir) {
		return dir, nil
	}
	return "", fmt.Errorf("asset directory not found in working directory or at %s", dir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
