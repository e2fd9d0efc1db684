//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Fallback size when the window size ioctl fails
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	readBuf []byte

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

func newBackend() Backend {
	return &unixBackend{
		in:      os.Stdin,
		out:     os.Stdout,
		inFd:    int(os.Stdin.Fd()),
		outFd:   int(os.Stdout.Fd()),
		readBuf: make([]byte, 256),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.resizeStopCh != nil {
		close(b.resizeStopCh)
		<-b.resizeDoneCh
		b.resizeStopCh = nil
	}
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

// Read polls stdin in 100ms slices so stopCh is observed
func (b *unixBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(b.inFd, b.readBuf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if rn == 0 {
			return nil, nil
		}

		ret := make([]byte, rn)
		copy(ret, b.readBuf[:rn])
		return ret, nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.resizeStopCh = make(chan struct{})
	b.resizeDoneCh = make(chan struct{})

	go func(stopCh, doneCh chan struct{}) {
		defer close(doneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				handler(b.Size())
			}
		}
	}(b.resizeStopCh, b.resizeDoneCh)
}

// resetTerminalMode restores cooked mode via /dev/tty, best-effort for crash recovery
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}
