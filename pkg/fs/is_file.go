package fs

import (
	"errors"
	"os"
)

// IsFile checks if the path is a regular file.
func (f *localFS) IsFile(path string) (bool, error) {
	info, err := os.Stat(f.resolve(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, Wrap("stat", path, err)
	}
	return info.Mode().IsRegular(), nil
}
