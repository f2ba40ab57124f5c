package main

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lerenn/hdfs-playground/cmd/hpg/internal/cli"
	"github.com/lerenn/hdfs-playground/pkg/roundtrip"
)

var (
	checkFile    string
	checkUnique  bool
	checkContent string
)

func createCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [chars|string|lines ...] [--file <name>] [--unique] [--content <text>]",
		Short: "Round-trip a file through one or more encodings",
		Long: `Write a file in the working directory, read it back, compare and delete it.
Without arguments every variant runs, in order: chars, string, lines.

Flags:
  --file      File name inside the working directory (default test.txt)
  --unique    Append a random suffix to the file name
  --content   Content to round-trip instead of the built-in sample`,
		ValidArgs: []string{
			string(roundtrip.VariantChars),
			string(roundtrip.VariantString),
			string(roundtrip.VariantLines),
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			variants, err := parseVariants(args)
			if err != nil {
				return err
			}

			s, err := cli.OpenSession()
			if err != nil {
				return err
			}
			defer func() {
				if cerr := s.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			if err := s.EnsureWorkingDirectory(); err != nil {
				return err
			}

			name := checkFile
			if checkUnique {
				name = uniqueName(name)
			}

			checker := roundtrip.NewChecker(roundtrip.NewCheckerParams{
				FS:     s.FS(),
				Logger: cli.NewLogger(),
			})

			return runChecks(cmd.OutOrStdout(), checker, s.Path(name), variants, checkContent, cli.Quiet)
		},
	}

	checkCmd.Flags().StringVar(&checkFile, "file", "test.txt", "File name inside the working directory")
	checkCmd.Flags().BoolVar(&checkUnique, "unique", false, "Append a random suffix to the file name")
	checkCmd.Flags().StringVar(&checkContent, "content", "", "Content to round-trip instead of the built-in sample")

	return checkCmd
}

func parseVariants(args []string) ([]roundtrip.Variant, error) {
	if len(args) == 0 {
		return roundtrip.Variants(), nil
	}
	variants := make([]roundtrip.Variant, 0, len(args))
	for _, arg := range args {
		v, err := roundtrip.ParseVariant(arg)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// uniqueName inserts a UUID before the extension: test.txt becomes test-<uuid>.txt.
func uniqueName(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "-" + uuid.NewString() + ext
}

// runChecks runs every variant against target and prints one line per variant.
// All variants run even when an earlier one fails.
func runChecks(
	out io.Writer,
	checker roundtrip.Checker,
	target string,
	variants []roundtrip.Variant,
	content string,
	quiet bool,
) error {
	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failed := 0
	for _, v := range variants {
		c := content
		if c == "" {
			c = roundtrip.DefaultContent(v)
		}

		if err := checker.Check(v, target, c); err != nil {
			failed++
			fmt.Fprintf(out, "%s %-6s %s: %v\n", fail("FAIL"), v, target, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "%s %-6s %s\n", pass("PASS"), v, target)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d variants", ErrCheckFailed, failed, len(variants))
	}
	return nil
}
