//go:build integration || e2e

// Package test holds the round-trip suite run against a real filesystem.
package test

import (
	"path"
	"strings"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lerenn/hdfs-playground/pkg/config"
	"github.com/lerenn/hdfs-playground/pkg/fs"
	"github.com/lerenn/hdfs-playground/pkg/roundtrip"
	"github.com/lerenn/hdfs-playground/pkg/session"
)

// TestFile is the file name every round-trip uses inside the working directory.
const TestFile = "test.txt"

// RoundTripSuite opens a session before each test, ensures the working
// directory and closes the session afterwards.
type RoundTripSuite struct {
	suite.Suite

	// Config returns the configuration for each test's session.
	Config func() config.Config

	Session *session.Session
	Checker roundtrip.Checker
}

// SetupTest opens the session and ensures the working directory exists.
func (s *RoundTripSuite) SetupTest() {
	sess, err := session.Open(s.Config(), session.WithLogger(s.T()))
	s.Require().NoError(err)
	s.Session = sess

	s.Require().NoError(s.Session.EnsureWorkingDirectory())
	s.Checker = roundtrip.NewChecker(roundtrip.NewCheckerParams{
		FS:     s.Session.FS(),
		Logger: s.T(),
	})
}

// TearDownTest closes the session.
func (s *RoundTripSuite) TearDownTest() {
	if s.Session != nil {
		s.NoError(s.Session.Close())
		s.Session = nil
	}
}

func (s *RoundTripSuite) target() string {
	return s.Session.Path(TestFile)
}

func (s *RoundTripSuite) filesystem() fs.FS {
	return s.Session.FS()
}

func (s *RoundTripSuite) requireAbsent(p string) {
	isFile, err := s.filesystem().IsFile(p)
	require.NoError(s.T(), err)
	require.False(s.T(), isFile, "%s should be absent", p)
}

func (s *RoundTripSuite) requirePresent(p string) {
	isFile, err := s.filesystem().IsFile(p)
	require.NoError(s.T(), err)
	require.True(s.T(), isFile, "%s should be present", p)
}

func (s *RoundTripSuite) TestCharsCowScenario() {
	p := s.target()

	s.Require().NoError(roundtrip.WriteChars(s.filesystem(), p, roundtrip.CowLine))
	s.requirePresent(p)

	got, err := roundtrip.ReadChars(s.filesystem(), p)
	s.Require().NoError(err)
	s.Equal("The cow is of the bovine ilk; one end is moo, the other milk.", got)

	s.Require().NoError(s.filesystem().Remove(p))
	s.requireAbsent(p)
}

func (s *RoundTripSuite) TestChars() {
	for _, content := range []string{
		roundtrip.CowLine,
		"",
		"café über naïve",
		"emoji \U0001F404 outside the BMP",
		"tab\tand\r\nline breaks\n",
	} {
		s.NoError(s.Checker.CheckChars(s.target(), content), "content %q", content)
	}
}

func (s *RoundTripSuite) TestString() {
	for _, content := range []string{
		strings.Join(roundtrip.CowLines, "\r\n"),
		roundtrip.CowLine,
		"first\r\nsecond\r\nthird",
	} {
		s.NoError(s.Checker.CheckString(s.target(), content), "content %q", content)
	}
}

func (s *RoundTripSuite) TestLines() {
	for _, lines := range [][]string{
		roundtrip.CowLines,
		{roundtrip.CowLine},
		{"", "blank first and last", ""},
	} {
		s.NoError(s.Checker.CheckLines(s.target(), lines), "lines %q", lines)
	}
}

func (s *RoundTripSuite) TestAllVariants() {
	for _, v := range roundtrip.Variants() {
		s.NoError(s.Checker.Check(v, s.target(), roundtrip.DefaultContent(v)), "variant %s", v)
	}
}

func (s *RoundTripSuite) TestFreshPathPresenceLifecycle() {
	p := s.Session.Path("fresh-" + path.Base(s.T().Name()) + ".txt")
	s.requireAbsent(p)

	s.Require().NoError(roundtrip.WriteLines(s.filesystem(), p, roundtrip.CowLines))
	s.requirePresent(p)

	s.Require().NoError(s.filesystem().Remove(p))
	s.requireAbsent(p)
}

func (s *RoundTripSuite) TestEnsureDirectoryIdempotent() {
	s.NoError(s.Session.EnsureWorkingDirectory())
	s.NoError(s.Session.EnsureWorkingDirectory())

	isDir, err := s.filesystem().IsDir(s.Session.Directory())
	s.Require().NoError(err)
	s.True(isDir)
}

func (s *RoundTripSuite) TestOverwriteExistingFile() {
	p := s.target()

	s.Require().NoError(roundtrip.WriteString(s.filesystem(), p, "a much longer first version of the file"))
	s.Require().NoError(roundtrip.WriteString(s.filesystem(), p, "short"))

	got, err := roundtrip.ReadString(s.filesystem(), p)
	s.Require().NoError(err)
	s.Equal("short", got)

	s.Require().NoError(s.filesystem().Remove(p))
	s.requireAbsent(p)
}
