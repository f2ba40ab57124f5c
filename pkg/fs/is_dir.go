package fs

import (
	"errors"
	"os"
)

// IsDir checks if the path is a directory.
func (f *localFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(f.resolve(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, Wrap("stat", path, err)
	}
	return info.IsDir(), nil
}
