package export

import (
	"os"
	"path/filepath"
)

// SaveSnapshot writes a snapshot payload under dir with the given name,
// creating the directory if needed, and returns the full path.
func SaveSnapshot(dir, name string, payload []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
