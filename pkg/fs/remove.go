package fs

import (
	"os"
)

// Remove removes a file or empty directory.
func (f *localFS) Remove(path string) error {
	return Wrap("remove", path, os.Remove(f.resolve(path)))
}

// Close is a no-op for the local disk.
func (f *localFS) Close() error {
	return nil
}
