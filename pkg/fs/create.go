package fs

import (
	"io"
	"os"
)

// Create opens the path for writing, truncating any existing file.
func (f *localFS) Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(f.resolve(path))
	if err != nil {
		return nil, Wrap("create", path, err)
	}
	return file, nil
}
