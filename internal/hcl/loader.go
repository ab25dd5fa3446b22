package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/cropcircles/internal/config"
	"github.com/specialistvlad/cropcircles/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a new HCL configuration loader that exposes the process
// environment as `env.<NAME>`.
func NewLoader() *Loader {
	return NewLoaderWithEnv(environ())
}

// NewLoaderWithEnv creates a loader with an explicit environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// Load parses and decodes a single HCL file into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := translate(&root)
	logger.Debug("HCL loading complete.", "input", model.Input, "log_level", model.LogLevel, "color", model.Color)
	return model, nil
}

// evalContext exposes the environment to expressions as an object named env.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(root *fileRoot) *config.Model {
	m := &config.Model{Input: root.Input}
	if root.Log != nil {
		m.LogLevel = root.Log.Level
		m.LogFormat = root.Log.Format
	}
	if root.Render != nil {
		m.Color = root.Render.Color
		m.Glyphs = config.Glyphs{Planted: root.Render.Planted, Mowed: root.Render.Mowed}
	}
	return m
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
