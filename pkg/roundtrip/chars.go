package roundtrip

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lerenn/hdfs-playground/pkg/fs"
)

// utf16BE encodes characters as big-endian UTF-16 code units without a byte order mark.
var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// WriteChars writes content one character at a time as UTF-16BE code units.
func WriteChars(fsys fs.FS, path, content string) (err error) {
	if !utf8.ValidString(content) {
		return ErrInvalidContent
	}

	w, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(w, "write", path, &err)

	enc := transform.NewWriter(w, utf16BE.NewEncoder())
	buf := make([]byte, utf8.UTFMax)
	for _, r := range content {
		n := utf8.EncodeRune(buf, r)
		if _, err := enc.Write(buf[:n]); err != nil {
			return fs.Wrap("write", path, err)
		}
	}

	// Flushes pending output; the underlying writer stays open.
	if err := enc.Close(); err != nil {
		return fs.Wrap("write", path, err)
	}
	return nil
}

// ReadChars decodes UTF-16BE characters until the end of the file.
func ReadChars(fsys fs.FS, path string) (content string, err error) {
	r, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer closeInto(r, "read", path, &err)

	dec := bufio.NewReader(transform.NewReader(r, utf16BE.NewDecoder()))
	var sb strings.Builder
	for {
		ch, _, err := dec.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fs.Wrap("read", path, err)
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

// closeInto closes c and records the close error when no earlier error occurred.
func closeInto(c io.Closer, op, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fs.Wrap(op, path, cerr)
	}
}
