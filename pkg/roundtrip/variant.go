// Package roundtrip writes content to a filesystem path, reads it back through the
// matching decoder, asserts equality and deletes the path.
package roundtrip

import (
	"fmt"
	"strings"
)

// Variant names an encoding used for a round-trip.
type Variant string

// Supported variants.
const (
	// VariantChars writes and reads one UTF-16 big-endian character at a time.
	VariantChars Variant = "chars"
	// VariantString writes one buffered string and reads it back as CRLF-joined lines.
	VariantString Variant = "string"
	// VariantLines writes LF-terminated lines and reads them back as a list.
	VariantLines Variant = "lines"
)

// Sample content used when no content is supplied.
const (
	CowLine = "The cow is of the bovine ilk; one end is moo, the other milk."
)

// CowLines is CowLine split across two lines.
var CowLines = []string{
	"The cow is of the bovine ilk;",
	"one end is moo, the other milk.",
}

// Variants returns every variant in execution order.
func Variants() []Variant {
	return []Variant{VariantChars, VariantString, VariantLines}
}

// ParseVariant converts a variant name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(name, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownVariant, name)
}

// DefaultContent returns the sample content for a variant, in the form Check expects.
func DefaultContent(v Variant) string {
	switch v {
	case VariantString:
		return strings.Join(CowLines, "\r\n")
	case VariantLines:
		return strings.Join(CowLines, "\n")
	default:
		return CowLine
	}
}

// SplitLines splits content on "\n" the way the lines variant expects its input.
// A single trailing newline does not produce an empty last line.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
