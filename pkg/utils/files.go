package utils

import (
	"io"
	"os"
	"path/filepath"
)

// ReadSource loads program text from path, or from stdin when path is empty.
// Relative paths are resolved against the working directory.
func ReadSource(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	fullPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
