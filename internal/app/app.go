package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/cropcircles/internal/config"
	"github.com/specialistvlad/cropcircles/internal/ctxlog"
	"github.com/specialistvlad/cropcircles/internal/field"
	"github.com/specialistvlad/cropcircles/internal/render"
	"github.com/specialistvlad/cropcircles/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	stdin    io.Reader
	logger   *slog.Logger
	config   *config.Model
	field    *field.Field
	renderer render.Renderer
}

// NewApp is the constructor for the main application. The field is written
// to outW; logs and warnings go to errW.
func NewApp(outW, errW io.Writer, stdin io.Reader, cfg *Config) (*App, error) {
	// Config loading happens before the final logger exists.
	bootstrap := newLogger("warn", "text", errW)
	model, err := resolveConfig(ctxlog.WithLogger(context.Background(), bootstrap), cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger(model.LogLevel, model.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	glyphs := render.Glyphs{Planted: model.Glyphs.Planted, Mowed: model.Glyphs.Mowed}
	if err := glyphs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid glyphs: %w", err)
	}
	renderer, err := render.ForMode(model.Color, outW, glyphs)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration resolved.", "input", model.Input, "color", model.Color)

	return &App{
		outW:     outW,
		stdin:    stdin,
		logger:   logger,
		config:   model,
		field:    field.New(),
		renderer: renderer,
	}, nil
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *config.Model {
	return a.config
}

// Field returns the field of the last run. This is primarily for testing.
func (a *App) Field() *field.Field {
	return a.field
}

// source builds the instruction source for the configured input. The
// default input falls back to stdin when the file is absent; an explicit
// path must exist.
func (a *App) source() source.Source {
	stdin := source.Reader("stdin", a.stdin)
	switch a.config.Input {
	case config.StdinInput:
		return stdin
	case config.DefaultInput:
		return source.Fallback(config.DefaultInput, stdin)
	default:
		return source.File(a.config.Input)
	}
}
