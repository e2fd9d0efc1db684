package border

import (
	"fmt"
	"strings"
)

// Type selects the default edge glyphs
type Type uint8

const (
	Solid  Type = iota // ─│
	Dotted             // ┈┊
	Dashed             // ╌╎
	Double             // ═║
)

// typeGlyphs holds {horizontal, vertical} per Type
var typeGlyphs = [...][2]rune{
	Solid:  {'─', '│'},
	Dotted: {'┈', '┊'},
	Dashed: {'╌', '╎'},
	Double: {'═', '║'},
}

var typeNames = [...]string{
	Solid:  "solid",
	Dotted: "dotted",
	Dashed: "dashed",
	Double: "double",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ParseType maps a name such as "dashed" to its Type, case-insensitive
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return Solid, fmt.Errorf("unknown border type %q", s)
}

// Horizontal returns the default glyph for top and bottom edges
func (t Type) Horizontal() rune {
	if int(t) >= len(typeGlyphs) {
		t = Solid
	}
	return typeGlyphs[t][0]
}

// Vertical returns the default glyph for left and right edges
func (t Type) Vertical() rune {
	if int(t) >= len(typeGlyphs) {
		t = Solid
	}
	return typeGlyphs[t][1]
}

// Edge identifies one side of a layer
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	edgeCount
)

var edgeNames = [edgeCount]string{"top", "bottom", "left", "right"}

func (e Edge) String() string {
	if e < edgeCount {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", e)
}

// Horizontal reports whether the edge runs along x
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Default returns the glyph the given Type draws on this edge
func (e Edge) Default(t Type) rune {
	if e.Horizontal() {
		return t.Horizontal()
	}
	return t.Vertical()
}

// Corner identifies one corner of a layer
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
	cornerCount
)

var cornerNames = [cornerCount]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// cornerGlyphs are the classic box-drawing corners used when none are configured
var cornerGlyphs = [cornerCount]rune{'┌', '┐', '└', '┘'}

func (c Corner) String() string {
	if c < cornerCount {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corner(%d)", c)
}

// Default returns the classic box-drawing glyph for this corner
func (c Corner) Default() rune {
	if c < cornerCount {
		return cornerGlyphs[c]
	}
	return cornerGlyphs[CornerTopLeft]
}

// Edges lists all edges in draw order
func Edges() []Edge {
	return []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
}

// Corners lists all corners in draw order
func Corners() []Corner {
	return []Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}
}
