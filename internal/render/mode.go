package render

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// Color modes accepted by ForMode.
const (
	ColorNever  = "never"
	ColorAlways = "always"
	ColorAuto   = "auto"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// isTerminal reports whether out is attached to a terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ForMode picks the renderer for a color mode. In auto mode colors are only
// used when out is a terminal.
func ForMode(mode string, out io.Writer, g Glyphs) (Renderer, error) {
	switch mode {
	case ColorNever, "":
		return NewText(g), nil
	case ColorAlways:
		return NewStyled(out, g, true), nil
	case ColorAuto:
		if isTerminal(out) {
			return NewStyled(out, g, false), nil
		}
		return NewText(g), nil
	default:
		return nil, fmt.Errorf("unknown color mode %q: must be 'auto', 'always' or 'never'", mode)
	}
}
