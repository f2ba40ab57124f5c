//go:build unit

package roundtrip

import (
	"bytes"
	"io"
)

// memWriter records written bytes and whether it was closed.
type memWriter struct {
	bytes.Buffer
	closed   bool
	writeErr error
	closeErr error
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.Buffer.Write(p)
}

func (w *memWriter) Close() error {
	w.closed = true
	return w.closeErr
}

// memReader serves fixed content and records whether it was closed.
type memReader struct {
	io.Reader
	closed bool
}

func newMemReader(data []byte) *memReader {
	return &memReader{Reader: bytes.NewReader(data)}
}

func (r *memReader) Close() error {
	r.closed = true
	return nil
}
