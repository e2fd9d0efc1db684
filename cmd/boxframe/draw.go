package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/boxframe/border"
	"github.com/lixenwraith/boxframe/layer"
	"github.com/lixenwraith/boxframe/screen"
	"github.com/lixenwraith/boxframe/terminal"
	"github.com/lixenwraith/boxframe/watch"
)

type drawParams struct {
	backend string
	color   string
	hold    time.Duration
	watch   bool
}

func newDrawCommand() *cobra.Command {
	var params drawParams

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw the border in the terminal",
		Long: `Take over the terminal and draw the configured border.

The border is redrawn when the window is resized and, with --watch, when the config file changes.
Press q, Esc or Ctrl-C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			reload := make(chan struct{}, 1)
			if params.watch {
				if err := s.watchConfig(ctx, reload); err != nil {
					return err
				}
			}

			switch params.backend {
			case "ansi":
				return s.drawANSI(ctx, params, reload)
			case "tcell":
				return s.drawTcell(ctx, params, reload)
			default:
				return fmt.Errorf("unknown backend %q, want ansi or tcell", params.backend)
			}
		},
	}

	cmd.Flags().StringVar(&params.backend, "backend", "ansi", "output backend: ansi, tcell")
	cmd.Flags().StringVar(&params.color, "color-mode", "auto", "color mode for the ansi backend: auto, truecolor, 256")
	cmd.Flags().DurationVar(&params.hold, "hold", 0, "quit after this long; 0 waits for a quit key")
	cmd.Flags().BoolVar(&params.watch, "watch", false, "redraw when the config file changes")
	addBorderFlags(cmd.Flags())
	return cmd
}

func (s *session) watchConfig(ctx context.Context, reload chan<- struct{}) error {
	path := s.loader.Path()
	if path == "" {
		s.log.Warn("No config file in use, --watch has nothing to watch.")
		return nil
	}
	w := watch.NewFileWatcher(path, watch.DefaultDebounce, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	}, s.log)
	return w.Start(ctx)
}

// reloadLayer rebuilds the layer from the config file at the current size.
// A broken file keeps the previous layer on screen.
func (s *session) reloadLayer(cur *layer.BaseLayer) *layer.BaseLayer {
	file, err := s.loader.Load()
	if err != nil {
		s.log.WithError(err).Warn("Config reload failed.")
		return cur
	}
	w, h := cur.Size()
	next, err := file.BaseLayer(w, h)
	if err != nil {
		s.log.WithError(err).Warn("Config reload rejected.")
		return cur
	}
	next.Log = s.log
	s.file = file
	s.log.Info("Config reloaded.")
	return next
}

func holdTimer(d time.Duration) (<-chan time.Time, func() bool) {
	if d <= 0 {
		return nil, func() bool { return false }
	}
	t := time.NewTimer(d)
	return t.C, t.Stop
}

func (s *session) drawANSI(ctx context.Context, params drawParams, reload <-chan struct{}) error {
	term := terminal.New(terminal.ParseColorMode(params.color))
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Fini()

	w, h := term.Size()
	l, err := s.file.BaseLayer(w, h)
	if err != nil {
		return err
	}
	l.Log = s.log

	redraw := func() error {
		return drawFrame(term.Writer(), l)
	}
	if err := redraw(); err != nil {
		return err
	}

	holdC, stop := holdTimer(params.hold)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-holdC:
			return nil
		case p, ok := <-term.Keys():
			if !ok || terminal.IsQuit(p) {
				return nil
			}
		case ev := <-term.ResizeChan():
			s.log.WithFields(map[string]any{"width": ev.Width, "height": ev.Height}).Debug("Terminal resized.")
			l.Resize(ev.Width, ev.Height)
			if err := redraw(); err != nil {
				return err
			}
		case <-reload:
			l = s.reloadLayer(l)
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}

// drawFrame queues a full clear ahead of the layer so the frame goes out in the layer's single flush
func drawFrame(w *terminal.CellWriter, l *layer.BaseLayer) error {
	if err := w.Clear(terminal.RGBBlack); err != nil {
		return &border.RenderError{X: -1, Y: -1, Err: err}
	}
	return l.Draw(w)
}

func (s *session) drawTcell(ctx context.Context, params drawParams, reload <-chan struct{}) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer scr.Fini()

	sink := screen.NewTcell(scr)
	w, h := sink.Size()
	l, err := s.file.BaseLayer(w, h)
	if err != nil {
		return err
	}
	l.Log = s.log

	redraw := func() error {
		scr.Clear()
		return l.Draw(sink)
	}
	if err := redraw(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	holdC, stop := holdTimer(params.hold)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-holdC:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				scr.Sync()
				l.Resize(ev.Size())
				if err := redraw(); err != nil {
					return err
				}
			}
		case <-reload:
			l = s.reloadLayer(l)
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
