package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/cropcircles/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_FromFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "input.txt")
	err := os.WriteFile(filePath, []byte("ft17 PLANTft9 nf17 PLANTnf9 PLANTjm5\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errOut, strings.NewReader(""), []string{filePath})

	// --- Assert ---
	require.NoError(t, runErr)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	for _, line := range lines {
		require.Len(t, line, 38)
	}
	require.Empty(t, errOut.String(), "valid input should not produce diagnostics")
}

func TestRun_WarningsGoToDiagnostics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errOut, strings.NewReader("jm5 XYZ\n"), []string{"-"})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Contains(t, errOut.String(), "Ignored invalid instruction")
	require.Contains(t, errOut.String(), "token=XYZ")
	require.NotContains(t, out.String(), "XYZ")
	require.Contains(t, out.String(), "          ", "the mowed disc should be rendered")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, strings.NewReader(""), []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, strings.NewReader(""), []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidConfigIsUsageError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cropcircles.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte("render {\n"), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""), []string{"-config", configPath, "-"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "failed to parse")
}

func TestRun_MissingInputFails(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, strings.NewReader(""), []string{filepath.Join(t.TempDir(), "absent.txt")})

	require.Error(t, err)
	require.Contains(t, err.Error(), "input source unavailable")
	require.Empty(t, out.String())
}
