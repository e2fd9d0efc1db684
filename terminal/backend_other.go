//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("terminal: platform not supported, use the tcell backend")

// otherBackend writes to stdout but cannot enter raw mode
type otherBackend struct{}

func newBackend() Backend { return otherBackend{} }

func (otherBackend) Init() error { return errUnsupported }
func (otherBackend) Fini()       {}
func (otherBackend) Size() (int, int) {
	return fallbackWidth, fallbackHeight
}
func (otherBackend) Write(p []byte) error {
	_, err := os.Stdout.Write(p)
	return err
}
func (otherBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}
func (otherBackend) SetResizeHandler(func(width, height int)) {}

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func resetTerminalMode() {}
