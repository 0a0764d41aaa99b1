package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
	"github.com/tokyo-night-lod/tnl/internal/palette"
)

func testScheme() Scheme {
	s := Scheme{
		Name:                "Test",
		Foreground:          "#a9b1d6",
		Background:          "#1a1b26",
		Cursor:              "#c0caf5",
		CursorText:          "#1a1b26",
		SelectionForeground: "#c0caf5",
		SelectionBackground: "#33467c",
	}
	for i := range s.ANSI {
		s.ANSI[i] = hexcolor.Serialize(float64(i*16), float64(i*8), float64(i*4))
	}
	return s
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"kitty", FormatKitty, false},
		{" Alacritty ", FormatAlacritty, false},
		{"FOOT", FormatFoot, false},
		{"ghostty", FormatGhostty, false},
		{"wezterm", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestKitty(t *testing.T) {
	out := Kitty(testScheme())
	assert.Contains(t, out, "background   #1a1b26\n")
	assert.Contains(t, out, "color0   #000000\n")
	assert.Contains(t, out, "color15   #f0783c\n")
}

func TestAlacritty(t *testing.T) {
	out := Alacritty(testScheme())
	assert.Contains(t, out, "[colors.normal]\nblack   = '#000000'\n")
	assert.Contains(t, out, "[colors.bright]\nblack   = '#804020'\n")
	assert.Contains(t, out, "magenta = '#502814'\n")
	assert.Contains(t, out, "background = '#33467c'\n")
}

func TestFoot(t *testing.T) {
	out := Foot(testScheme())
	assert.Contains(t, out, "regular1=100804\n")
	assert.Contains(t, out, "bright7=f0783c\n")
	assert.Contains(t, out, "background=1a1b26\n")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "regular") || strings.HasPrefix(line, "bright") {
			assert.NotContains(t, line, "#")
		}
	}
}

func TestGhostty(t *testing.T) {
	out := Ghostty(testScheme())
	assert.Contains(t, out, "palette = 0=#000000\n")
	assert.Contains(t, out, "palette = 15=#f0783c\n")
	assert.Contains(t, out, "cursor-color = #c0caf5\n")
}

func TestRenderEveryVariant(t *testing.T) {
	for _, v := range palette.Variants() {
		p, err := palette.Adapt(v)
		require.NoError(t, err)

		s, err := FromPalette(p)
		require.NoError(t, err)
		assert.True(t, hexcolor.IsHex(s.SelectionBackground))
		assert.Len(t, s.SelectionBackground, 7, "selection is flattened")
		assert.Equal(t, p.Terminal, s.ANSI)

		for _, f := range Formats() {
			out, err := Render(f, p)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "# "+p.Name+"\n"), "%s/%s", v, f)
		}
	}

	_, err := Render("xterm", nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
