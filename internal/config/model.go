package config

import (
	"fmt"
	"strings"
)

// DefaultInput is the file read before falling back to stdin.
const DefaultInput = "input.txt"

// StdinInput forces reading from standard input.
const StdinInput = "-"

// Model is the unified, format-agnostic representation of the application
// configuration. Empty fields mean "not set".
type Model struct {
	Input     string
	LogLevel  string
	LogFormat string
	Color     string
	Glyphs    Glyphs
}

// Glyphs holds the two-column text of each cell state.
type Glyphs struct {
	Planted string
	Mowed   string
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Model {
	return &Model{
		Input:     DefaultInput,
		LogLevel:  "warn",
		LogFormat: "text",
		Color:     "never",
		Glyphs:    Glyphs{Planted: "{}", Mowed: "  "},
	}
}

// Merge returns a copy of m with every non-empty field of override applied.
func (m *Model) Merge(override *Model) *Model {
	out := *m
	if override == nil {
		return &out
	}
	if override.Input != "" {
		out.Input = override.Input
	}
	if override.LogLevel != "" {
		out.LogLevel = strings.ToLower(override.LogLevel)
	}
	if override.LogFormat != "" {
		out.LogFormat = strings.ToLower(override.LogFormat)
	}
	if override.Color != "" {
		out.Color = strings.ToLower(override.Color)
	}
	if override.Glyphs.Planted != "" {
		out.Glyphs.Planted = override.Glyphs.Planted
	}
	if override.Glyphs.Mowed != "" {
		out.Glyphs.Mowed = override.Glyphs.Mowed
	}
	return &out
}

// Validate checks the enumerated settings. Glyph widths are checked by the
// renderer.
func (m *Model) Validate() error {
	switch m.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", m.LogLevel)
	}
	switch m.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", m.LogFormat)
	}
	switch m.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be 'auto', 'always' or 'never'", m.Color)
	}
	if m.Input == "" {
		return fmt.Errorf("input cannot be empty")
	}
	return nil
}
