package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadVersionFile reads the active version stamp from path.
// The file holds a single line; a missing file means no version is active.
func ReadVersionFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading version file: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}

// WriteVersionFile writes version as the single line of path, creating the
// parent directory if needed.
func WriteVersionFile(path, version string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, []byte(version+"\n"), 0o644)
}
