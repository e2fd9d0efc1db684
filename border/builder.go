package border

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/boxframe/terminal"
)

// Builder stages a Config. Every setter takes and returns the builder by value, so calls chain
// left to right and a partially configured builder can be reused as a template.
type Builder struct {
	cfg     Config
	edgeSet [edgeCount]bool
	err     error
}

// New returns a builder with the defaults: visible, padding 1, one solid layer, classic corners, white
func New() Builder {
	b := Builder{
		cfg: Config{
			visible: true,
			padding: 1,
			layers:  1,
			typ:     Solid,
		},
	}
	for _, k := range Corners() {
		b.cfg.corners[k] = []rune{k.Default()}
	}
	return b
}

// Visible toggles drawing
func (b Builder) Visible(visible bool) Builder {
	b.cfg.visible = visible
	return b
}

// Padding sets the distance between window edge and the outermost layer
func (b Builder) Padding(padding int) Builder {
	b.cfg.padding = padding
	return b
}

// Width sets the number of concentric layers
func (b Builder) Width(layers int) Builder {
	b.cfg.layers = layers
	return b
}

// Color replaces the color list with a single color used by every layer
func (b Builder) Color(c terminal.HexColor) Builder {
	b.cfg.colors = []terminal.HexColor{c}
	return b
}

// WithColor appends the color for the next layer
func (b Builder) WithColor(c terminal.HexColor) Builder {
	b.cfg.colors = append(slices.Clip(b.cfg.colors), c)
	return b
}

// WithColors replaces the color list, one color per layer from the outside in
func (b Builder) WithColors(colors ...terminal.HexColor) Builder {
	b.cfg.colors = slices.Clone(colors)
	return b
}

// Type selects the glyph set for edges that were not given explicit glyphs
func (b Builder) Type(t Type) Builder {
	b.cfg.typ = t
	return b
}

// BorderChar draws a single layer entirely with one glyph
func (b Builder) BorderChar(ch rune) Builder {
	b.cfg.omni = ch
	b.cfg.hasOmni = true
	b.cfg.layers = 1
	return b
}

// OmniChar sets the omni glyph without touching the layer count
func (b Builder) OmniChar(ch rune) Builder {
	b.cfg.omni = ch
	b.cfg.hasOmni = true
	return b
}

// ClearOmni returns to per-edge glyphs
func (b Builder) ClearOmni() Builder {
	b.cfg.omni = 0
	b.cfg.hasOmni = false
	return b
}

// VerticalChars sets per-layer glyphs for the left and right edges
func (b Builder) VerticalChars(glyphs ...rune) Builder {
	return b.EdgeChars(EdgeLeft, glyphs...).EdgeChars(EdgeRight, glyphs...)
}

// HorizontalChars sets per-layer glyphs for the top and bottom edges
func (b Builder) HorizontalChars(glyphs ...rune) Builder {
	return b.EdgeChars(EdgeTop, glyphs...).EdgeChars(EdgeBottom, glyphs...)
}

// EdgeChars sets per-layer glyphs for one edge. An empty list is rejected when rendering.
func (b Builder) EdgeChars(e Edge, glyphs ...rune) Builder {
	if e >= edgeCount {
		return b.fail(configErr("edge", fmt.Errorf("unknown edge %d", e)))
	}
	b.cfg.edges[e] = slices.Clone(glyphs)
	b.edgeSet[e] = true
	return b
}

// CornerChars sets per-layer glyphs for one corner. An empty list is rejected when rendering.
func (b Builder) CornerChars(k Corner, glyphs ...rune) Builder {
	if k >= cornerCount {
		return b.fail(configErr("corner", fmt.Errorf("unknown corner %d", k)))
	}
	b.cfg.corners[k] = slices.Clone(glyphs)
	return b
}

// Err returns the first error recorded by a setter
func (b Builder) Err() error {
	return b.err
}

// Build validates builder constraints and returns the finished Config.
// The color count is checked against the final layer count, so Width and WithColors may come in
// either order. Render-time checks (zero width, missing or wide glyphs) are left to the Renderer.
func (b Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.cfg.padding < 0 {
		return nil, configErr("padding", fmt.Errorf("%w: %d", ErrNegativePadding, b.cfg.padding))
	}
	if b.cfg.layers < 0 {
		return nil, configErr("width", fmt.Errorf("%w: %d", ErrNegativeWidth, b.cfg.layers))
	}
	if err := colorCountErr(len(b.cfg.colors), b.cfg.layers); err != nil {
		return nil, err
	}

	cfg := b.cfg
	for _, e := range Edges() {
		if !b.edgeSet[e] {
			// deeper layers resolve to the last entry
			cfg.edges[e] = []rune{e.Default(cfg.typ)}
		}
	}
	return &cfg, nil
}

// MustBuild is Build for static configurations; it panics on error
func (b Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (b Builder) fail(err error) Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func colorCountErr(colors, layers int) error {
	if colors > max(layers, 0) {
		return configErr("colors", fmt.Errorf("%w: %d colors for %d layers", ErrTooManyColors, colors, layers))
	}
	return nil
}
