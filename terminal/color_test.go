package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plasma/render"
)

func clearColorEnv(t *testing.T) {
	for _, k := range []string{
		"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE", "TERM",
	} {
		t.Setenv(k, "")
	}
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"empty", nil, ColorMode256},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := DetectColorMode(); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	clearColorEnv(t)
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"256", ColorMode256, false},
		{"truecolor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"auto", ColorMode256, false},
		{"cga", ColorMode256, true},
	}
	for _, tc := range tests {
		got, err := ParseColorMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseColorMode(%q): expected (%s, err=%v), got (%s, %v)", tc.in, tc.want, tc.wantErr, got, err)
		}
	}
}

func TestNearest256Palette(t *testing.T) {
	want := []int{196, 46, 21, 226}
	for i, idx := range want {
		c := render.PaletteColor(i)
		if got := nearest256(c); got != idx {
			t.Errorf("Expected %s to map to xterm %d, got %d", c, idx, got)
		}
		// Cached path
		if got := nearest256(c); got != idx {
			t.Errorf("Expected cached %s to map to xterm %d, got %d", c, idx, got)
		}
	}
	if got := nearest256(render.Color(0)); got != 16 {
		t.Errorf("Expected black to map to xterm 16, got %d", got)
	}
}

func TestCellColorModes(t *testing.T) {
	red := render.PaletteColor(0)
	if got := ColorModeTrueColor.cellColor(red); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected RGB red in truecolor mode, got %v", got)
	}
	if got := ColorMode256.cellColor(red); got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette 196 in 256 mode, got %v", got)
	}
}
