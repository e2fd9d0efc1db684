// @focus: #terminal { output }
package terminal

import (
	"bufio"
	"io"
	"sync"
)

// Cell represents a single terminal cell
// Zero Bg keeps whatever background is already on screen
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// CellWriter emits one cell at a time as ANSI: move cursor, set colors, print rune, reset.
// Output is buffered until Flush.
type CellWriter struct {
	mu   sync.Mutex
	w    *bufio.Writer
	mode ColorMode
}

// NewCellWriter wraps w with a 64KB buffer
func NewCellWriter(w io.Writer, mode ColorMode) *CellWriter {
	return &CellWriter{
		w:    bufio.NewWriterSize(w, 65536),
		mode: mode,
	}
}

// SetCell queues one cell at (x, y), 0-indexed.
// bufio latches the first write failure, so the error returned here is the earliest I/O error.
func (cw *CellWriter) SetCell(x, y int, c Cell) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	w := cw.w
	writeCursorPos(w, x, y)
	writeAttrs(w, c.Attrs)
	writeFg(w, c.Fg, cw.mode)
	if !c.Bg.IsZero() {
		writeBg(w, c.Bg, cw.mode)
	}

	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		w.WriteByte(byte(r))
	} else {
		w.WriteRune(r)
	}

	_, err := w.Write(csiSGR0)
	return err
}

// Clear queues a full-screen clear with bg as background
func (cw *CellWriter) Clear(bg RGB) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.w.Write(csiSGR0)
	writeBg(cw.w, bg, cw.mode)
	_, err := cw.w.Write(csiClear)
	return err
}

// SetCursor queues a cursor move to (x, y) and shows it, or hides it
func (cw *CellWriter) SetCursor(visible bool, x, y int) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !visible {
		_, err := cw.w.Write(csiCursorHide)
		return err
	}
	writeCursorPos(cw.w, x, y)
	_, err := cw.w.Write(csiCursorShow)
	return err
}

// Flush writes everything queued since the last flush
func (cw *CellWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.w.Flush()
}

// ColorMode returns the color encoding used for output
func (cw *CellWriter) ColorMode() ColorMode {
	return cw.mode
}
