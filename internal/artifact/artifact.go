// Package artifact reads test logs and writes generated files through an
// afero filesystem.
package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// ReadLog returns the whole log at path as text.
func ReadLog(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("reading log %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile creates or truncates path with data, creating missing parent
// directories.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
