package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/cropcircles/internal/field"
	"github.com/specialistvlad/cropcircles/internal/instruction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_FreshField(t *testing.T) {
	out := String(field.New())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, field.Height)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("{}", field.Width), line)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestText_MowedDisc(t *testing.T) {
	f := field.New()
	in, err := instruction.Parse("jm1")
	require.NoError(t, err)
	f.Apply(in)

	lines := strings.Split(String(f), "\n")

	want := strings.Repeat("{}", 9) + "  " + strings.Repeat("{}", 9)
	assert.Equal(t, want, lines[12])
	for i, line := range lines[:field.Height] {
		assert.Len(t, line, 2*field.Width, "row %d", i)
	}
}

func TestText_CustomGlyphs(t *testing.T) {
	f := field.New()
	f.Fill(field.Mowed)

	var buf bytes.Buffer
	require.NoError(t, NewText(Glyphs{Planted: "##", Mowed: ".."}).Render(&buf, f))

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, strings.Repeat("..", field.Width), first)
}

func TestGlyphs_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		glyphs    Glyphs
		expectErr bool
	}{
		{name: "default", glyphs: DefaultGlyphs},
		{name: "ascii pair", glyphs: Glyphs{Planted: "##", Mowed: ".."}},
		{name: "wide rune", glyphs: Glyphs{Planted: "🌾", Mowed: "  "}},
		{name: "error - planted too short", glyphs: Glyphs{Planted: "{", Mowed: "  "}, expectErr: true},
		{name: "error - mowed too long", glyphs: Glyphs{Planted: "{}", Mowed: "   "}, expectErr: true},
		{name: "error - empty", glyphs: Glyphs{}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.glyphs.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestForMode(t *testing.T) {
	var buf bytes.Buffer

	r, err := ForMode(ColorNever, &buf, DefaultGlyphs)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, r)

	// A buffer is never a terminal.
	r, err = ForMode(ColorAuto, &buf, DefaultGlyphs)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, r)

	r, err = ForMode(ColorAlways, &buf, DefaultGlyphs)
	require.NoError(t, err)
	assert.IsType(t, &Styled{}, r)

	_, err = ForMode("rainbow", &buf, DefaultGlyphs)
	assert.ErrorContains(t, err, "unknown color mode")
}

func TestStyled_ForcedColorsEmitEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewStyled(&buf, DefaultGlyphs, true)

	require.NoError(t, r.Render(&buf, field.New()))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "{}")
	assert.Equal(t, field.Height, strings.Count(out, "\n"))
}
