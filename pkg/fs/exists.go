package fs

import (
	"errors"
	"os"
)

// Exists checks if a file or directory exists at the given path.
func (f *localFS) Exists(path string) (bool, error) {
	_, err := os.Stat(f.resolve(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, Wrap("stat", path, err)
}
