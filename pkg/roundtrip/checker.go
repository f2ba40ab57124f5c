package roundtrip

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/lerenn/hdfs-playground/pkg/fs"
	"github.com/lerenn/hdfs-playground/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=checker.go -destination=mocks/checker.gen.go -package=mocks

// Checker runs write, exists, read, compare, delete, absent sequences.
type Checker interface {
	// CheckChars round-trips content through the character stream encoding.
	CheckChars(path, content string) error

	// CheckString round-trips content through a single buffered write.
	CheckString(path, content string) error

	// CheckLines round-trips lines through LF-terminated buffered writes.
	CheckLines(path string, lines []string) error

	// Check dispatches to the variant's check; the lines variant splits content on "\n".
	Check(variant Variant, path, content string) error
}

// NewCheckerParams contains parameters for creating a new Checker instance.
type NewCheckerParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realChecker struct {
	fs     fs.FS
	logger logger.Logger
}

// NewChecker creates a new Checker instance.
func NewChecker(params NewCheckerParams) Checker {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realChecker{
		fs:     params.FS,
		logger: l,
	}
}

// Check dispatches to the variant's check.
func (c *realChecker) Check(variant Variant, path, content string) error {
	switch variant {
	case VariantChars:
		return c.CheckChars(path, content)
	case VariantString:
		return c.CheckString(path, content)
	case VariantLines:
		return c.CheckLines(path, SplitLines(content))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}
}

// CheckChars round-trips content through the character stream encoding.
func (c *realChecker) CheckChars(path, content string) error {
	return c.run(VariantChars, path,
		func() error { return WriteChars(c.fs, path, content) },
		func() error {
			got, err := ReadChars(c.fs, path)
			if err != nil {
				return err
			}
			return compare(path, content, got)
		})
}

// CheckString round-trips content through a single buffered write.
func (c *realChecker) CheckString(path, content string) error {
	return c.run(VariantString, path,
		func() error { return WriteString(c.fs, path, content) },
		func() error {
			got, err := ReadString(c.fs, path)
			if err != nil {
				return err
			}
			return compare(path, content, got)
		})
}

// CheckLines round-trips lines through LF-terminated buffered writes.
func (c *realChecker) CheckLines(path string, lines []string) error {
	return c.run(VariantLines, path,
		func() error { return WriteLines(c.fs, path, lines) },
		func() error {
			got, err := ReadLines(c.fs, path)
			if err != nil {
				return err
			}
			if !slices.Equal(lines, got) {
				return mismatch(path, strings.Join(lines, "\n"), strings.Join(got, "\n"))
			}
			return nil
		})
}

// run executes the shared sequence. A failed write leaves whatever reached the
// filesystem in place.
func (c *realChecker) run(variant Variant, path string, write, readAndCompare func() error) error {
	c.logger.Logf("[%s] writing %s", variant, path)
	if err := write(); err != nil {
		return fmt.Errorf("%s: write: %w", variant, err)
	}

	if err := c.expectFile(path, true); err != nil {
		return fmt.Errorf("%s: %w", variant, err)
	}

	c.logger.Logf("[%s] reading %s", variant, path)
	if err := readAndCompare(); err != nil {
		return fmt.Errorf("%s: read: %w", variant, err)
	}

	c.logger.Logf("[%s] deleting %s", variant, path)
	if err := c.fs.Remove(path); err != nil {
		return fmt.Errorf("%s: delete: %w", variant, err)
	}

	if err := c.expectFile(path, false); err != nil {
		return fmt.Errorf("%s: %w", variant, err)
	}

	c.logger.Logf("[%s] %s round-tripped", variant, path)
	return nil
}

func (c *realChecker) expectFile(path string, want bool) error {
	isFile, err := c.fs.IsFile(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	switch {
	case want && !isFile:
		return fmt.Errorf("%w: %w: %s", ErrAssertion, ErrNotCreated, path)
	case !want && isFile:
		return fmt.Errorf("%w: %w: %s", ErrAssertion, ErrNotRemoved, path)
	}
	return nil
}

func compare(path, want, got string) error {
	if want == got {
		return nil
	}
	return mismatch(path, want, got)
}

func mismatch(path, want, got string) error {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "written",
		ToFile:   "read",
		Context:  2,
	})
	return fmt.Errorf("%w: %w: %s: written %q, read %q\n%s", ErrAssertion, ErrContentMismatch, path, want, got, diff)
}
