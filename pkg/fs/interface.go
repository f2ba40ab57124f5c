package fs

import (
	"io"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the operations the harness needs from a remote filesystem.
// Paths are slash-separated and absolute within the filesystem namespace.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory. A missing path is not a directory.
	IsDir(path string) (bool, error)

	// IsFile checks if the path is a regular file. A missing path is not a file.
	IsFile(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Create opens the path for writing, truncating any existing file.
	Create(path string) (io.WriteCloser, error)

	// Open opens the path for reading.
	Open(path string) (io.ReadCloser, error)

	// Remove removes a file or empty directory.
	Remove(path string) error

	// Close releases the connection to the filesystem.
	Close() error
}
