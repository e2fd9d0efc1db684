// Package layer is the full-window base layer: background, foreground, an optional title and the
// border around everything.
package layer

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/boxframe/border"
	"github.com/lixenwraith/boxframe/terminal"
)

// CursorSetter is implemented by sinks that can place the terminal cursor
type CursorSetter interface {
	SetCursor(visible bool, x, y int) error
}

// BaseLayer owns the border config and the window size it is drawn at
type BaseLayer struct {
	width, height int

	Background terminal.HexColor
	Foreground terminal.HexColor
	// FillBackground paints every cell with Background before the border
	FillBackground bool

	Border *border.Config
	Title  string

	CursorVisible bool
	CursorX       int
	CursorY       int

	Alignment TextAlignment
	Font      FontStyle

	Debug bool
	Log   logrus.FieldLogger
}

// New returns a base layer for a width x height window drawing cfg
func New(width, height int, cfg *border.Config) *BaseLayer {
	return &BaseLayer{
		width:      width,
		height:     height,
		Background: "#000000",
		Foreground: terminal.White,
		Border:     cfg,
		Alignment:  AlignLeft,
	}
}

// Size returns the window size the layer draws at
func (l *BaseLayer) Size() (width, height int) {
	return l.width, l.height
}

// Resize records a new window size; the next Draw recomputes geometry from it
func (l *BaseLayer) Resize(width, height int) {
	l.width, l.height = width, height
}

// Draw writes background, border and title to sink and flushes once
func (l *BaseLayer) Draw(sink border.Sink) error {
	var opts []border.Option
	if l.Log != nil {
		opts = append(opts, border.WithLogger(l.Log))
	}
	opts = append(opts, border.WithDebug(l.Debug))

	r := border.NewRenderer(l.Border, sink, opts...)
	frame, err := r.Plan(l.width, l.height)
	if err != nil {
		return err
	}

	var cells []border.Placed
	if l.FillBackground {
		cells = l.planBackground(cells)
	}
	cells = append(cells, frame...)
	if l.Border.Visible() {
		cells = l.planTitle(cells)
	}

	for _, c := range cells {
		if err := sink.SetCell(c.X, c.Y, c.Cell); err != nil {
			return &border.RenderError{X: c.X, Y: c.Y, Err: err}
		}
	}
	if cs, ok := sink.(CursorSetter); ok {
		if err := cs.SetCursor(l.CursorVisible, l.CursorX, l.CursorY); err != nil {
			return &border.RenderError{X: l.CursorX, Y: l.CursorY, Err: err}
		}
	}
	if err := sink.Flush(); err != nil {
		return &border.RenderError{X: -1, Y: -1, Err: err}
	}
	return nil
}

func (l *BaseLayer) planBackground(cells []border.Placed) []border.Placed {
	bg := l.Background.RGB()
	if bg.IsZero() {
		// zero Bg means "keep"; nudge pure black so it is painted
		bg = terminal.RGB{R: 0, G: 0, B: 1}
	}
	blank := terminal.Cell{Rune: ' ', Fg: l.Foreground.RGB(), Bg: bg}
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			cells = append(cells, border.Placed{X: x, Y: y, Cell: blank})
		}
	}
	return cells
}

// planTitle places " Title " on the top edge of layer 0, between its corners
func (l *BaseLayer) planTitle(cells []border.Placed) []border.Placed {
	if l.Title == "" {
		return cells
	}
	g := border.Geometry(l.width, l.height, l.Border.Padding(), 0)
	cols := g.Cols()
	if !g.Drawable() || cols.Len() < 3 {
		return cells
	}

	text := border.CellWidth.Truncate(" "+l.Title+" ", cols.Len(), "…")
	textW := border.CellWidth.StringWidth(text)

	var x int
	switch l.Alignment {
	case AlignCenter:
		x = cols.Start + (cols.Len()-textW)/2
	case AlignRight:
		x = max(cols.End-textW-1, cols.Start)
	default:
		x = cols.Start
		if textW < cols.Len() {
			x++
		}
	}

	fg := l.Foreground.RGB()
	attrs := l.Font.Attr()
	for _, ch := range text {
		w := border.CellWidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > cols.End {
			break
		}
		cells = append(cells, border.Placed{X: x, Y: g.Top, Cell: terminal.Cell{Rune: ch, Fg: fg, Attrs: attrs}})
		x += w
	}
	return cells
}
