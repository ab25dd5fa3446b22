// Package testutil holds helpers shared by package and command tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/cropcircles/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Run describes one end-to-end application run.
type Run struct {
	// Files are written below a fresh temp dir before the run. Keys are
	// relative paths.
	Files map[string]string
	// Stdin is what the app sees on standard input.
	Stdin string
	// Config is passed to app.NewApp. ConfigPath and Overrides.Input are
	// resolved against the temp dir when relative.
	Config app.Config
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// OutputLines returns the rendered rows without the final terminator.
func (r *HarnessResult) OutputLines() []string {
	if r.Output == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(r.Output, "\n"), "\n")
}

// RunApp provides a standardized harness for running the application
// end-to-end with captured stdout and stderr.
func RunApp(t *testing.T, run Run) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range run.Files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := run.Config
	if cfg.ConfigPath != "" && !filepath.IsAbs(cfg.ConfigPath) {
		cfg.ConfigPath = filepath.Join(dir, cfg.ConfigPath)
	}
	if in := cfg.Overrides.Input; in != "" && in != "-" && !filepath.IsAbs(in) {
		cfg.Overrides.Input = filepath.Join(dir, in)
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result := &HarnessResult{Dir: dir}

	a, err := app.NewApp(out, logs, strings.NewReader(run.Stdin), &cfg)
	if err != nil {
		result.Err = err
		result.LogOutput = logs.String()
		return result
	}
	result.App = a
	result.Err = a.Run(context.Background())
	result.Output = out.String()
	result.LogOutput = logs.String()

	if os.Getenv("CROPCIRCLES_TEST_LOGS") == "true" {
		t.Logf("--- APP LOGS ---\n%s", result.LogOutput)
	}
	return result
}
