package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/cropcircles/internal/field"
)

// GlyphWidth is the display width every glyph must have.
const GlyphWidth = 2

// Glyphs maps each cell state to its text.
type Glyphs struct {
	Planted string
	Mowed   string
}

// DefaultGlyphs is the classic crop-circle rendering.
var DefaultGlyphs = Glyphs{Planted: "{}", Mowed: "  "}

// For returns the glyph of a cell state.
func (g Glyphs) For(c field.Cell) string {
	if c == field.Mowed {
		return g.Mowed
	}
	return g.Planted
}

// Validate checks that both glyphs occupy exactly GlyphWidth columns.
func (g Glyphs) Validate() error {
	if w := lipgloss.Width(g.Planted); w != GlyphWidth {
		return fmt.Errorf("planted glyph %q must be %d columns wide, got %d", g.Planted, GlyphWidth, w)
	}
	if w := lipgloss.Width(g.Mowed); w != GlyphWidth {
		return fmt.Errorf("mowed glyph %q must be %d columns wide, got %d", g.Mowed, GlyphWidth, w)
	}
	return nil
}
