// Package palette derives per-layer border colors
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/boxframe/terminal"
)

// MaxSteps bounds a gradient; longer layer stacks reuse the last color
const MaxSteps = 256

// Gradient returns n colors blended from `from` to `to` in CIE-L*a*b* space, endpoints included.
// Unlike terminal.ParseHex, malformed endpoints are an error: a gradient has no sensible partial result.
func Gradient(from, to terminal.HexColor, n int) ([]terminal.HexColor, error) {
	if n < 1 {
		return nil, fmt.Errorf("gradient needs at least one step, got %d", n)
	}
	if n > MaxSteps {
		return nil, fmt.Errorf("gradient of %d steps exceeds %d", n, MaxSteps)
	}
	c1, err := colorful.Hex(string(from))
	if err != nil {
		return nil, fmt.Errorf("gradient start %q: %w", from, err)
	}
	c2, err := colorful.Hex(string(to))
	if err != nil {
		return nil, fmt.Errorf("gradient end %q: %w", to, err)
	}

	out := make([]terminal.HexColor, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = hex(c1.BlendLab(c2, t))
	}
	return out, nil
}

func hex(c colorful.Color) terminal.HexColor {
	return terminal.HexColor(strings.ToUpper(c.Clamped().Hex()))
}
