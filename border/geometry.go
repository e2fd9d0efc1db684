package border

// Span is a half-open coordinate range [Start, End)
type Span struct {
	Start, End int
}

// Empty reports whether the span has no cells
func (s Span) Empty() bool {
	return s.Start >= s.End
}

// Len returns the number of cells, 0 for an empty span
func (s Span) Len() int {
	return max(0, s.End-s.Start)
}

// Layer holds the edge coordinates of one frame
type Layer struct {
	Index  int
	Left   int // x of the left edge
	Right  int // x of the right edge
	Top    int // y of the top edge
	Bottom int // y of the bottom edge
}

// Geometry computes the frame of layer l for a width x height window.
// Layer 0 sits padding cells in from every side; each deeper layer is one more cell in.
func Geometry(width, height, padding, l int) Layer {
	inset := padding + l
	return Layer{
		Index:  l,
		Left:   inset,
		Right:  width - 1 - inset,
		Top:    inset,
		Bottom: height - 1 - inset,
	}
}

// Drawable reports whether the layer is a rectangle with four distinct corners.
// Anything thinner would draw a side twice or overlap itself, so it is skipped.
func (g Layer) Drawable() bool {
	return g.Left < g.Right && g.Top < g.Bottom
}

// Rows is the vertical run of the left and right edges, strictly between the corners
func (g Layer) Rows() Span {
	return Span{Start: g.Top + 1, End: g.Bottom}
}

// Cols is the horizontal run of the top and bottom edges, strictly between the corners
func (g Layer) Cols() Span {
	return Span{Start: g.Left + 1, End: g.Right}
}

// CornerAt returns the cell of a corner
func (g Layer) CornerAt(k Corner) (x, y int) {
	switch k {
	case CornerTopRight:
		return g.Right, g.Top
	case CornerBottomLeft:
		return g.Left, g.Bottom
	case CornerBottomRight:
		return g.Right, g.Bottom
	default:
		return g.Left, g.Top
	}
}

// Contains reports whether (x, y) lies on this layer's frame
func (g Layer) Contains(x, y int) bool {
	if !g.Drawable() {
		return false
	}
	onCol := x == g.Left || x == g.Right
	onRow := y == g.Top || y == g.Bottom
	inCols := x >= g.Left && x <= g.Right
	inRows := y >= g.Top && y <= g.Bottom
	return (onCol && inRows) || (onRow && inCols)
}

// CellCount returns how many cells the frame covers, 0 when not drawable
func (g Layer) CellCount() int {
	if !g.Drawable() {
		return 0
	}
	return 4 + 2*g.Cols().Len() + 2*g.Rows().Len()
}

// InPadding reports whether (x, y) lies between the window edge and layer 0
func InPadding(width, height, padding, x, y int) bool {
	return x < padding || x >= width-padding || y < padding || y >= height-padding
}
