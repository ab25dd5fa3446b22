// Package yamlcfg provides the YAML implementation of the config.Loader
// interface. The document mirrors the HCL layout:
//
//	input: ${HOME}/crops/input.txt
//	log:
//	  level: debug
//	  format: json
//	render:
//	  color: auto
//	  planted: "{}"
//	  mowed: "  "
//
// `${NAME}` references in input are expanded from the environment.
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/cropcircles/internal/config"
	"github.com/specialistvlad/cropcircles/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Input  string        `yaml:"input"`
	Log    logSection    `yaml:"log"`
	Render renderSection `yaml:"render"`
}

type logSection struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type renderSection struct {
	Color   string `yaml:"color"`
	Planted string `yaml:"planted"`
	Mowed   string `yaml:"mowed"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a loader that expands variables from the process
// environment.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// NewLoaderWithEnv creates a loader with an explicit environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{getenv: func(k string) string { return env[k] }}
}

// Load reads and decodes a single YAML file. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	model := &config.Model{
		Input:     os.Expand(root.Input, l.getenv),
		LogLevel:  root.Log.Level,
		LogFormat: root.Log.Format,
		Color:     root.Render.Color,
		Glyphs:    config.Glyphs{Planted: root.Render.Planted, Mowed: root.Render.Mowed},
	}
	logger.Debug("YAML loading complete.", "input", model.Input, "log_level", model.LogLevel, "color", model.Color)
	return model, nil
}
