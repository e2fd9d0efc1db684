package terminal

import (
	"os"
	"strconv"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	// RGBBlack is the zero value black color
	RGBBlack = RGB{0, 0, 0}
	// RGBWhite is the fallback border color
	RGBWhite = RGB{255, 255, 255}
	// RGBDarkGreen paints padding cells in debug mode
	RGBDarkGreen = RGB{0, 100, 0}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero reports whether c is the zero value, used as "keep existing background"
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// HexColor is a color written as "#RRGGBB"
type HexColor string

// White is the default border color
const White HexColor = "#FFFFFF"

// RGB converts the hex code, see ParseHex
func (h HexColor) RGB() RGB {
	return ParseHex(string(h))
}

// String returns the hex code unchanged
func (h HexColor) String() string {
	return string(h)
}

// ParseHex converts "#RRGGBB" to RGB.
// Each component is parsed on its own; a malformed or missing component resolves to 0.
func ParseHex(code string) RGB {
	return RGB{
		R: hexComponent(code, 1),
		G: hexComponent(code, 3),
		B: hexComponent(code, 5),
	}
}

func hexComponent(code string, start int) uint8 {
	if len(code) < start+2 {
		return 0
	}
	v, err := strconv.ParseUint(code[start:start+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// Hex formats c as "#RRGGBB"
func (c RGB) Hex() HexColor {
	const digits = "0123456789ABCDEF"
	b := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return HexColor(b[:])
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	// Grayscale ramp 232-255 maps to luminance 8, 18, ..., 238
	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)

		cubeDist := abs(r-int(cubeValues[cubeIndex[c.R]])) +
			abs(g-int(cubeValues[cubeIndex[c.G]])) +
			abs(b-int(cubeValues[cubeIndex[c.B]]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]
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

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode maps a flag value to a ColorMode, "auto" and unknown values detect from environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}
