// Package fsutil wraps the handful of filesystem operations the
// generator performs.
package fsutil

import (
	"fmt"
	"os"
)

// Exists reports whether path exists at all, file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes data to path. With backup set, an existing file is
// first moved aside to path+".bak" so an interrupted write never
// destroys the previous asset.
func WriteFile(path string, data []byte, backup bool) error {
	if backup && Exists(path) {
		if err := os.Rename(path, path+".bak"); err != nil {
			return fmt.Errorf("back up %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
