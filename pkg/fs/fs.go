package fs

import (
	"path"
	"path/filepath"
)

type localFS struct {
	root string
}

// NewLocalFS creates an FS backed by the local disk. Namespace paths are resolved
// under root, so "/data/test.txt" with root "/tmp/x" lands in "/tmp/x/data/test.txt".
func NewLocalFS(root string) FS {
	return &localFS{root: root}
}

// resolve maps a namespace path to a host path under the root.
func (f *localFS) resolve(p string) string {
	clean := path.Clean("/" + p)
	if f.root == "" {
		return filepath.FromSlash(clean)
	}
	return filepath.Join(f.root, filepath.FromSlash(clean))
}
