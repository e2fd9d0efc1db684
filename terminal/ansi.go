// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge so a write to the bottom-right corner does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

var attrCodes = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
}

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [10]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeAttrs writes style attributes, nothing for AttrNone
func writeAttrs(w *bufio.Writer, attr Attr) {
	if attr == AttrNone {
		return
	}
	w.Write(csi)
	first := true
	for _, ac := range attrCodes {
		if attr&ac.attr == 0 {
			continue
		}
		if !first {
			w.WriteByte(';')
		}
		w.WriteByte(ac.code)
		first = false
	}
	w.WriteByte('m')
}

// writeFg writes complete fg color sequence
func writeFg(w *bufio.Writer, fg RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		writeRGB(w, fg)
		return
	}
	w.Write(csiFg256)
	writeInt(w, int(RGBTo256(fg)))
	w.WriteByte('m')
}

// writeBg writes complete bg color sequence
func writeBg(w *bufio.Writer, bg RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeRGB(w, bg)
		return
	}
	w.Write(csiBg256)
	writeInt(w, int(RGBTo256(bg)))
	w.WriteByte('m')
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}
