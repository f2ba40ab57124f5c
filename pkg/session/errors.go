package session

import "errors"

// Error definitions for session package.
var (
	// ErrClosed is returned by operations on a closed session.
	ErrClosed = errors.New("session is closed")
)
