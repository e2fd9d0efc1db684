package config

import (
	"fmt"

	"github.com/lixenwraith/boxframe/border"
	"github.com/lixenwraith/boxframe/layer"
	"github.com/lixenwraith/boxframe/palette"
	"github.com/lixenwraith/boxframe/terminal"
)

// Builder translates the border section into a border.Builder.
// Per-edge glyphs override the horizontal and vertical shorthands.
func (b BorderFile) Builder() (border.Builder, error) {
	typ, err := border.ParseType(b.Type)
	if err != nil {
		return border.Builder{}, err
	}

	bld := border.New().
		Visible(b.Visible).
		Padding(b.Padding).
		Width(b.Width).
		Type(typ)

	switch {
	case len(b.Colors) > 0:
		colors := make([]terminal.HexColor, len(b.Colors))
		for i, c := range b.Colors {
			colors[i] = terminal.HexColor(c)
		}
		bld = bld.WithColors(colors...)
	case len(b.Gradient) == 2:
		// layers past MaxSteps fall back to the last gradient color
		steps := min(b.Width, palette.MaxSteps)
		colors, err := palette.Gradient(terminal.HexColor(b.Gradient[0]), terminal.HexColor(b.Gradient[1]), steps)
		if err != nil {
			return border.Builder{}, fmt.Errorf("border.gradient: %w", err)
		}
		bld = bld.WithColors(colors...)
	case len(b.Gradient) != 0:
		return border.Builder{}, fmt.Errorf("border.gradient: want 2 colors, got %d", len(b.Gradient))
	}

	g := b.Glyphs
	if g.Horizontal != "" {
		bld = bld.HorizontalChars([]rune(g.Horizontal)...)
	}
	if g.Vertical != "" {
		bld = bld.VerticalChars([]rune(g.Vertical)...)
	}
	for _, e := range []struct {
		edge   border.Edge
		glyphs string
	}{
		{border.EdgeTop, g.Top},
		{border.EdgeBottom, g.Bottom},
		{border.EdgeLeft, g.Left},
		{border.EdgeRight, g.Right},
	} {
		if e.glyphs != "" {
			bld = bld.EdgeChars(e.edge, []rune(e.glyphs)...)
		}
	}
	for _, c := range []struct {
		corner border.Corner
		glyphs string
	}{
		{border.CornerTopLeft, g.TopLeft},
		{border.CornerTopRight, g.TopRight},
		{border.CornerBottomLeft, g.BottomLeft},
		{border.CornerBottomRight, g.BottomRight},
	} {
		if c.glyphs != "" {
			bld = bld.CornerChars(c.corner, []rune(c.glyphs)...)
		}
	}

	if b.Omni != "" {
		r := []rune(b.Omni)
		if len(r) != 1 {
			return border.Builder{}, fmt.Errorf("border.omni: want a single glyph, got %q", b.Omni)
		}
		bld = bld.OmniChar(r[0])
	}

	return bld, nil
}

// Config builds the border config
func (b BorderFile) Config() (*border.Config, error) {
	bld, err := b.Builder()
	if err != nil {
		return nil, err
	}
	return bld.Build()
}

// BaseLayer builds the border and wraps it in a base layer of the given size
func (f *File) BaseLayer(width, height int) (*layer.BaseLayer, error) {
	cfg, err := f.Border.Config()
	if err != nil {
		return nil, err
	}
	align, err := layer.ParseAlignment(f.Layer.Alignment)
	if err != nil {
		return nil, err
	}

	l := layer.New(width, height, cfg)
	l.Title = f.Layer.Title
	l.Alignment = align
	l.Font = layer.NewFontStyle(f.Layer.Bold, f.Layer.Italic, f.Layer.Underline)
	l.FillBackground = f.Layer.Fill
	l.Debug = f.Layer.Debug
	l.CursorVisible = f.Layer.Cursor.Visible
	l.CursorX = f.Layer.Cursor.X
	l.CursorY = f.Layer.Cursor.Y
	if f.Layer.Background != "" {
		l.Background = terminal.HexColor(f.Layer.Background)
	}
	if f.Layer.Foreground != "" {
		l.Foreground = terminal.HexColor(f.Layer.Foreground)
	}
	return l, nil
}
