//go:build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lerenn/hdfs-playground/cmd/hpg/internal/cli"
	"github.com/lerenn/hdfs-playground/pkg/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli.Quiet, cli.Verbose = false, false
	cli.ConfigPath, cli.Endpoint, cli.Impl, cli.Directory = "", "", "", ""
	checkFile, checkUnique, checkContent, force = "test.txt", false, "", false
	for _, env := range []string{config.EnvEndpoint, config.EnvImpl, config.EnvDirectory, config.EnvUser} {
		t.Setenv(env, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_InitThenRefuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hpg", "config.yaml")

	_, err := runCLI(t, "init", "-c", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "endpoint: hdfs://localhost:8020")

	_, err = runCLI(t, "init", "-c", path)
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = runCLI(t, "init", "-c", path, "--force")
	assert.NoError(t, err)
}

func TestCLI_EnsureDirAndCheckOnLocalDisk(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	common := []string{"-c", cfgPath, "--endpoint", "file://" + root, "--directory", "/work/nested"}

	_, err := runCLI(t, append([]string{"ensure-dir"}, common...)...)
	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(root, "work", "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	out, err := runCLI(t, append([]string{"check"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "PASS"))

	_, err = os.Stat(filepath.Join(root, "work", "nested", "test.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCLI_CheckUniqueWithContent(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := runCLI(t, "check", "lines", "chars",
		"-c", cfgPath, "--endpoint", "file://"+root, "--directory", "/u",
		"--unique", "--content", "alpha\nbeta")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "PASS"))
	assert.Contains(t, out, "/u/test-")
}

func TestCLI_CheckUnknownVariant(t *testing.T) {
	_, err := runCLI(t, "check", "bytes", "--endpoint", "file:///tmp", "--directory", "/x")

	assert.Error(t, err)
}
