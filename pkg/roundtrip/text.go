package roundtrip

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/lerenn/hdfs-playground/pkg/fs"
)

const maxLineLength = 16 << 20

// WriteString writes content as UTF-8 through a single buffered write.
func WriteString(fsys fs.FS, path, content string) (err error) {
	w, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(w, "write", path, &err)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(content); err != nil {
		return fs.Wrap("write", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fs.Wrap("write", path, err)
	}
	return nil
}

// ReadString reads the file line by line and joins the lines with CRLF.
func ReadString(fsys fs.FS, path string) (string, error) {
	lines, err := ReadLines(fsys, path)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\r\n"), nil
}

// WriteLines writes each line followed by "\n" through a buffered writer.
func WriteLines(fsys fs.FS, path string, lines []string) (err error) {
	w, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(w, "write", path, &err)

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fs.Wrap("write", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fs.Wrap("write", path, err)
	}
	return nil
}

// ReadLines reads the file as lines terminated by "\n", "\r" or "\r\n".
// Terminators are stripped; an unterminated last line is kept.
func ReadLines(fsys fs.FS, path string) (lines []string, err error) {
	r, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeInto(r, "read", path, &err)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	scanner.Split(scanLines)

	lines = []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fs.Wrap("read", path, err)
	}
	return lines, nil
}

// scanLines is a bufio.SplitFunc accepting "\n", "\r" and "\r\n" as terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A lone '\r' at the buffer end may be the first half of "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
