package terminal

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/plasma/render"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a flag value; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// cellColor converts a pixel to a cell color for the mode
func (m ColorMode) cellColor(c render.Color) tcell.Color {
	if m == ColorModeTrueColor {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(nearest256(c))
}

// Color cube levels for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

var (
	xtermOnce sync.Once
	xtermLab  [256 - 16]colorful.Color

	// nearestCache maps an RGB565 value to palette index+1, 0 meaning not yet computed
	nearestMu    sync.Mutex
	nearestCache [1 << 16]uint8
)

func buildXtermPalette() {
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xtermLab[i] = colorful.Color{
					R: float64(cubeValues[r]) / 255.0,
					G: float64(cubeValues[g]) / 255.0,
					B: float64(cubeValues[b]) / 255.0,
				}
				i++
			}
		}
	}
	for s := 0; s < 24; s++ {
		v := float64(8+10*s) / 255.0
		xtermLab[grayscaleStart-16+s] = colorful.Color{R: v, G: v, B: v}
	}
}

// nearest256 returns the xterm palette index (16-255) closest to c in Lab space
// The 16 system colors are skipped since terminals redefine them
func nearest256(c render.Color) int {
	nearestMu.Lock()
	defer nearestMu.Unlock()

	if v := nearestCache[c]; v != 0 {
		return int(v-1) + 16
	}

	xtermOnce.Do(buildXtermPalette)

	target := c.Colorful()
	best := 0
	bestDist := target.DistanceLab(xtermLab[0])
	for i := 1; i < len(xtermLab); i++ {
		if d := target.DistanceLab(xtermLab[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	nearestCache[c] = uint8(best + 1)
	return best + 16
}
