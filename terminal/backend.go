package terminal

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init and stops the resize watcher
	Fini()

	// Size returns the window size in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}

// backendWriter adapts Backend to io.Writer for the cell writer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
