package screen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/boxframe/terminal"
)

// ErrOutOfBounds is returned for writes outside the grid
var ErrOutOfBounds = errors.New("cell out of bounds")

// Grid is an in-memory cell buffer, row-major: cells[y*width + x]
type Grid struct {
	width, height int
	cells         []terminal.Cell
	writes        int
	flushes       int

	cursorVisible    bool
	cursorX, cursorY int
}

// NewGrid allocates a width x height grid of empty cells
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]terminal.Cell, width*height),
	}
}

// SetCell stores c at (x, y)
func (g *Grid) SetCell(x, y int, c terminal.Cell) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = c
	g.writes++
	return nil
}

// Flush counts frames; the grid has nothing to write out
func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// SetCursor records the cursor state
func (g *Grid) SetCursor(visible bool, x, y int) error {
	g.cursorVisible, g.cursorX, g.cursorY = visible, x, y
	return nil
}

// Cursor returns the last recorded cursor state
func (g *Grid) Cursor() (visible bool, x, y int) {
	return g.cursorVisible, g.cursorX, g.cursorY
}

// At returns the cell at (x, y), zero outside the grid
func (g *Grid) At(x, y int) terminal.Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return terminal.Cell{}
	}
	return g.cells[y*g.width+x]
}

// Size returns the grid dimensions
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Writes returns the number of SetCell calls that landed
func (g *Grid) Writes() int { return g.writes }

// Flushes returns the number of Flush calls
func (g *Grid) Flushes() int { return g.flushes }

// Reset clears every cell and the counters
func (g *Grid) Reset() {
	clear(g.cells)
	g.writes, g.flushes = 0, 0
	g.cursorVisible, g.cursorX, g.cursorY = false, 0, 0
}

// String renders the grid as text, one line per row, empty cells as spaces
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c.Rune == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}
