package fs

import "os"

// MkdirAll creates a directory and all parent directories.
func (f *localFS) MkdirAll(path string, perm os.FileMode) error {
	return Wrap("mkdir", path, os.MkdirAll(f.resolve(path), perm))
}
