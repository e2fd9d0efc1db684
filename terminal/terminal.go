package terminal

import (
	"io"
	"os"
	"sync"
)

// Terminal provides the drawable-state lifecycle around a cell writer
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ResizeChan returns channel that receives resize events
	ResizeChan() <-chan ResizeEvent

	// Keys returns channel of raw input chunks, closed when input ends
	Keys() <-chan []byte

	// ColorMode returns the configured color capability
	ColorMode() ColorMode

	// Writer returns the cell writer bound to terminal output
	Writer() *CellWriter

	// Clear fills screen with specified background color
	Clear(bg RGB) error
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	writer  *CellWriter
	mode    ColorMode

	resizeCh chan ResizeEvent
	keysCh   chan []byte
	stopCh   chan struct{}
	doneCh   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal instance, detecting color mode when none is given
func New(colorMode ...ColorMode) Terminal {
	return newTerm(newBackend(), colorMode...)
}

func newTerm(b Backend, colorMode ...ColorMode) *termImpl {
	mode := DetectColorMode()
	if len(colorMode) > 0 {
		mode = colorMode[0]
	}

	return &termImpl{
		backend:  b,
		writer:   NewCellWriter(backendWriter{b}, mode),
		mode:     mode,
		resizeCh: make(chan ResizeEvent, 1),
		keysCh:   make(chan []byte, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(func(w, h int) {
		// Keep only the latest size pending
		select {
		case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
		}
	})

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	t.writeRaw(csiAutoWrapOff)

	go t.readLoop()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	<-t.doneCh

	t.writer.Flush()
	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main buffer has wrap enabled
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) readLoop() {
	defer close(t.doneCh)
	defer close(t.keysCh)

	for {
		data, err := t.backend.Read(t.stopCh)
		if err != nil || data == nil {
			return
		}
		select {
		case t.keysCh <- data:
		case <-t.stopCh:
			return
		}
	}
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ResizeChan returns the resize event channel
func (t *termImpl) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// Keys returns raw input chunks
func (t *termImpl) Keys() <-chan []byte {
	return t.keysCh
}

// ColorMode returns the color capability used for output
func (t *termImpl) ColorMode() ColorMode {
	return t.mode
}

// Writer returns the cell writer
func (t *termImpl) Writer() *CellWriter {
	return t.writer
}

// Clear fills screen with background color and flushes
func (t *termImpl) Clear(bg RGB) error {
	if err := t.writer.Clear(bg); err != nil {
		return err
	}
	return t.writer.Flush()
}

func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// IsQuit reports whether an input chunk holds q, Ctrl-C or a lone Esc
// Esc followed by more bytes is an escape sequence (arrows, function keys), not a quit
func IsQuit(p []byte) bool {
	if len(p) == 1 && p[0] == 0x1b {
		return true
	}
	for _, b := range p {
		switch b {
		case 'q', 'Q', 0x03:
			return true
		}
	}
	return false
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
