package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/specialistvlad/cropcircles/internal/field"
)

// Renderer writes a field to a writer.
type Renderer interface {
	Render(w io.Writer, f *field.Field) error
}

// Text renders plain glyphs.
type Text struct {
	Glyphs Glyphs
}

// NewText creates a plain renderer.
func NewText(g Glyphs) *Text {
	return &Text{Glyphs: g}
}

// Render implements Renderer.
func (t *Text) Render(w io.Writer, f *field.Field) error {
	return writeRows(w, f, func(c field.Cell) string { return t.Glyphs.For(c) })
}

// String renders the field with the default glyphs.
func String(f *field.Field) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = NewText(DefaultGlyphs).Render(&sb, f)
	return sb.String()
}

// Styled renders glyphs with terminal colors.
type Styled struct {
	planted lipgloss.Style
	mowed   lipgloss.Style
}

// NewStyled creates a colored renderer bound to out. When force is set the
// ANSI profile is used even if out is not a terminal.
func NewStyled(out io.Writer, g Glyphs, force bool) *Styled {
	r := lipgloss.NewRenderer(out)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Styled{
		planted: r.NewStyle().Foreground(lipgloss.Color("34")).SetString(g.Planted),
		mowed:   r.NewStyle().Background(lipgloss.Color("180")).SetString(g.Mowed),
	}
}

// Render implements Renderer.
func (s *Styled) Render(w io.Writer, f *field.Field) error {
	return writeRows(w, f, func(c field.Cell) string {
		if c == field.Mowed {
			return s.mowed.String()
		}
		return s.planted.String()
	})
}

func writeRows(w io.Writer, f *field.Field, glyph func(field.Cell) string) error {
	bw := bufio.NewWriter(w)
	for _, row := range f.Rows() {
		for _, c := range row {
			if _, err := bw.WriteString(glyph(c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
