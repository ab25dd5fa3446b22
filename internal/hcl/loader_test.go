package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/cropcircles/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cropcircles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
input = "${env.CROPS}/input.txt"

log {
  level  = "debug"
  format = "json"
}

render {
  color   = "always"
  planted = "##"
  mowed   = ".."
}
`)
	loader := NewLoaderWithEnv(map[string]string{"CROPS": "/srv/crops"})

	model, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, &config.Model{
		Input:     "/srv/crops/input.txt",
		LogLevel:  "debug",
		LogFormat: "json",
		Color:     "always",
		Glyphs:    config.Glyphs{Planted: "##", Mowed: ".."},
	}, model)
}

func TestLoad_Empty(t *testing.T) {
	model, err := NewLoaderWithEnv(nil).Load(context.Background(), writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, &config.Model{}, model)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{
			name:      "syntax error",
			content:   "log {\n level = \"debug\"\n",
			errSubstr: "failed to parse",
		},
		{
			name:      "unknown attribute",
			content:   `width = 40`,
			errSubstr: "failed to decode",
		},
		{
			name:      "unknown env variable",
			content:   `input = env.NOPE`,
			errSubstr: "failed to decode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoaderWithEnv(map[string]string{}).Load(context.Background(), writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
