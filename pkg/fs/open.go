package fs

import (
	"io"
	"os"
)

// Open opens the path for reading.
func (f *localFS) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(f.resolve(path))
	if err != nil {
		return nil, Wrap("open", path, err)
	}
	return file, nil
}
