package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxframe/terminal"
)

// Tcell draws cells onto a tcell.Screen; Flush shows the frame
type Tcell struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewTcell wraps an initialized screen
func NewTcell(s tcell.Screen) *Tcell {
	return &Tcell{screen: s, base: tcell.StyleDefault}
}

// SetCell places one rune; zero Bg keeps the screen's default background
func (t *Tcell) SetCell(x, y int, c terminal.Cell) error {
	t.screen.SetContent(x, y, c.Rune, nil, Style(t.base, c))
	return nil
}

// SetCursor shows the screen cursor at (x, y) or hides it
func (t *Tcell) SetCursor(visible bool, x, y int) error {
	if visible {
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}
	return nil
}

// Flush makes the queued cells visible
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

// Size returns the screen size in cells
func (t *Tcell) Size() (width, height int) {
	return t.screen.Size()
}

// Style converts cell colors and attributes onto base
func Style(base tcell.Style, c terminal.Cell) tcell.Style {
	st := base.Foreground(Color(c.Fg))
	if !c.Bg.IsZero() {
		st = st.Background(Color(c.Bg))
	}
	if c.Attrs&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&terminal.AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&terminal.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&terminal.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&terminal.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&terminal.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Color converts an RGB triple to a tcell true color
func Color(c terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
