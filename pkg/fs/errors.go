// Package fs provides the filesystem capability set used by sessions and round-trip checks.
package fs

import (
	"errors"
	"fmt"
	"os"
)

// Error definitions for fs package.
var (
	// Session errors.
	ErrConnection = errors.New("connection failed")

	// Operation errors.
	ErrPermission = errors.New("permission denied")
	ErrIO         = errors.New("i/o failure")

	// Path errors.
	ErrNotDirectory = errors.New("not a directory")
	ErrNotEmpty     = errors.New("directory not empty")
)

// Wrap classifies a driver error for the given operation and path.
// Permission failures wrap ErrPermission, everything else wraps ErrIO.
// The original error stays in the chain, so os.ErrNotExist remains matchable.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPermission) || errors.Is(err, ErrIO) || errors.Is(err, ErrConnection) {
		return err
	}
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %s %s: %w", ErrPermission, op, path, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

// Connection wraps an error raised while establishing a session.
func Connection(endpoint string, err error) error {
	if errors.Is(err, ErrConnection) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrConnection, endpoint, err)
}
