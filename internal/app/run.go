package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/cropcircles/internal/ctxlog"
	"github.com/specialistvlad/cropcircles/internal/field"
	"github.com/specialistvlad/cropcircles/internal/instruction"
)

// Run executes the main application logic: read, apply, render.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	src := a.source()
	line, err := src.ReadLine(ctx)
	if err != nil {
		return fmt.Errorf("failed to read instructions: %w", err)
	}
	a.logger.Debug("Instruction line read.", "source", src.Name(), "bytes", len(line))

	applied, skipped := a.Process(ctx, line)

	if err := a.renderer.Render(a.outW, a.field); err != nil {
		return fmt.Errorf("failed to render field: %w", err)
	}

	a.logger.Info("Field rendered.",
		"applied", applied,
		"skipped", skipped,
		"planted", a.field.Count(field.Planted),
		"mowed", a.field.Count(field.Mowed),
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Process resets the field and applies every valid token of line in order.
// Invalid tokens are logged as warnings and skipped. It returns the number of
// applied and skipped tokens.
func (a *App) Process(ctx context.Context, line string) (applied, skipped int) {
	logger := ctxlog.FromContext(ctx)
	a.field.Reset()

	for _, token := range instruction.Tokenize(line) {
		in, err := instruction.Parse(token)
		if err != nil {
			logger.Warn("Ignored invalid instruction.", "token", token, "error", err)
			skipped++
			continue
		}
		touched := a.field.Apply(in)
		logger.Debug("Instruction applied.", "instruction", in.String(), "action", in.Action.String(), "cells", touched)
		applied++
	}
	return applied, skipped
}
