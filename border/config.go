package border

import (
	"slices"

	"github.com/lixenwraith/boxframe/terminal"
)

// Config describes a border. It is produced by Builder.Build and never mutated afterwards;
// accessors return copies so a shared *Config stays read-only.
type Config struct {
	visible bool
	padding int
	layers  int
	typ     Type

	omni    rune
	hasOmni bool

	edges   [edgeCount][]rune
	corners [cornerCount][]rune
	colors  []terminal.HexColor
}

// Visible reports whether rendering draws anything
func (c *Config) Visible() bool { return c.visible }

// Padding is the cell distance between window edge and layer 0
func (c *Config) Padding() int { return c.padding }

// Layers is the number of concentric frames, the builder's Width
func (c *Config) Layers() int { return c.layers }

// Type is the border type that supplied default edge glyphs
func (c *Config) Type() Type { return c.typ }

// Omni returns the omni glyph and whether omni mode is on
func (c *Config) Omni() (rune, bool) { return c.omni, c.hasOmni }

// EdgeGlyphs returns the per-layer glyphs for an edge
func (c *Config) EdgeGlyphs(e Edge) []rune {
	if e >= edgeCount {
		return nil
	}
	return slices.Clone(c.edges[e])
}

// CornerGlyphs returns the per-layer glyphs for a corner
func (c *Config) CornerGlyphs(k Corner) []rune {
	if k >= cornerCount {
		return nil
	}
	return slices.Clone(c.corners[k])
}

// Colors returns the per-layer colors
func (c *Config) Colors() []terminal.HexColor {
	return slices.Clone(c.colors)
}

// EdgeGlyph resolves the glyph for an edge of layer l
func (c *Config) EdgeGlyph(e Edge, l int) rune {
	if c.hasOmni {
		return c.omni
	}
	if e >= edgeCount {
		return e.Default(c.typ)
	}
	return Resolve(c.edges[e], l, e.Default(c.typ))
}

// CornerGlyph resolves the glyph for a corner of layer l
func (c *Config) CornerGlyph(k Corner, l int) rune {
	if c.hasOmni {
		return c.omni
	}
	if k >= cornerCount {
		return k.Default()
	}
	return Resolve(c.corners[k], l, k.Default())
}

// LayerColor resolves the color of layer l: colors[l], else the last color, else white
func (c *Config) LayerColor(l int) terminal.RGB {
	return Resolve(c.colors, l, terminal.White).RGB()
}
