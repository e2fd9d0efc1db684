package border

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/boxframe/terminal"
)

// Sink receives one call per drawn cell and one Flush per frame
type Sink interface {
	SetCell(x, y int, c terminal.Cell) error
	Flush() error
}

// Placed is a cell with its grid position
type Placed struct {
	X, Y int
	terminal.Cell
}

// State tracks a render pass
type State uint8

const (
	StateUnvalidated State = iota
	StateValidated
	StateRendering
	StateDone
	StateRejected
	StateAborted // sink failed mid-frame
)

var stateNames = [...]string{"unvalidated", "validated", "rendering", "done", "rejected", "aborted"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Renderer draws a Config into a Sink
type Renderer struct {
	cfg   *Config
	sink  Sink
	log   logrus.FieldLogger
	debug bool
	state State
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLogger routes render diagnostics to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDebug paints padding cells with a dark green background
func WithDebug(on bool) Option {
	return func(r *Renderer) {
		r.debug = on
	}
}

// NewRenderer binds cfg to sink
func NewRenderer(cfg *Config, sink Sink, opts ...Option) *Renderer {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Renderer{
		cfg:  cfg,
		sink: sink,
		log:  discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns where the last render pass ended
func (r *Renderer) State() State {
	return r.state
}

// Config returns the rendered configuration
func (r *Renderer) Config() *Config {
	return r.cfg
}

// Validate checks cfg for problems that make it undrawable
func Validate(cfg *Config) error {
	if cfg == nil {
		return configErr("", errors.New("nil config"))
	}
	if cfg.layers < 1 {
		return configErr("width", ErrZeroWidth)
	}
	if cfg.hasOmni {
		return checkGlyph("omni", cfg.omni)
	}
	for _, e := range Edges() {
		field := "edge " + e.String()
		if len(cfg.edges[e]) == 0 {
			return configErr(field, ErrMissingGlyph)
		}
		for _, g := range cfg.edges[e] {
			if err := checkGlyph(field, g); err != nil {
				return err
			}
		}
	}
	for _, k := range Corners() {
		field := "corner " + k.String()
		if len(cfg.corners[k]) == 0 {
			return configErr(field, ErrMissingGlyph)
		}
		for _, g := range cfg.corners[k] {
			if err := checkGlyph(field, g); err != nil {
				return err
			}
		}
	}
	return nil
}

// CellWidth measures runes as a non-CJK terminal does, so box-drawing glyphs count as one cell
// regardless of the locale the process runs under. Text placed on a border must use it too.
var CellWidth = &runewidth.Condition{EastAsianWidth: false}

func checkGlyph(field string, g rune) error {
	if w := CellWidth.RuneWidth(g); w != 1 {
		return configErr(field, fmt.Errorf("%w: %q is %d cells wide", ErrWideGlyph, g, w))
	}
	return nil
}

// Plan validates the config and returns every cell of the frame for a width x height window
// without touching the sink. An invisible config plans nothing.
func (r *Renderer) Plan(width, height int) ([]Placed, error) {
	r.state = StateUnvalidated
	cfg := r.cfg

	if cfg != nil && !cfg.visible {
		r.state = StateDone
		return nil, nil
	}

	if err := Validate(cfg); err != nil {
		r.state = StateRejected
		r.log.WithError(err).Debug("border config rejected")
		return nil, err
	}
	r.state = StateValidated

	var cells []Placed
	if r.debug {
		cells = r.planPadding(cells, width, height)
	}
	if cfg.hasOmni {
		return r.planOmni(cells, width, height), nil
	}

	for l := 0; l < cfg.layers; l++ {
		g := Geometry(width, height, cfg.padding, l)
		if !g.Drawable() {
			// Deeper layers are strictly smaller
			r.log.WithFields(logrus.Fields{
				"layer":  l,
				"width":  width,
				"height": height,
			}).Debug("layer degenerate, skipping remaining layers")
			break
		}
		cells = r.planLayer(cells, g)
	}
	return cells, nil
}

// Render plans the frame, writes each cell to the sink and flushes once.
// A sink error stops the pass immediately; cells already written are not rolled back.
func (r *Renderer) Render(width, height int) error {
	cells, err := r.Plan(width, height)
	if err != nil || r.state == StateDone {
		return err
	}

	r.state = StateRendering
	for _, c := range cells {
		if err := r.sink.SetCell(c.X, c.Y, c.Cell); err != nil {
			r.state = StateAborted
			return &RenderError{X: c.X, Y: c.Y, Err: err}
		}
	}
	if err := r.sink.Flush(); err != nil {
		r.state = StateAborted
		return &RenderError{X: -1, Y: -1, Err: err}
	}

	r.state = StateDone
	r.log.WithFields(logrus.Fields{
		"cells":  len(cells),
		"width":  width,
		"height": height,
	}).Debug("border rendered")
	return nil
}

func (r *Renderer) planLayer(cells []Placed, g Layer) []Placed {
	cfg := r.cfg
	l := g.Index
	fg := cfg.LayerColor(l)

	for _, k := range Corners() {
		x, y := g.CornerAt(k)
		cells = append(cells, Placed{X: x, Y: y, Cell: terminal.Cell{Rune: cfg.CornerGlyph(k, l), Fg: fg}})
	}

	cols := g.Cols()
	top, bottom := cfg.EdgeGlyph(EdgeTop, l), cfg.EdgeGlyph(EdgeBottom, l)
	for x := cols.Start; x < cols.End; x++ {
		cells = append(cells,
			Placed{X: x, Y: g.Top, Cell: terminal.Cell{Rune: top, Fg: fg}},
			Placed{X: x, Y: g.Bottom, Cell: terminal.Cell{Rune: bottom, Fg: fg}},
		)
	}

	rows := g.Rows()
	left, right := cfg.EdgeGlyph(EdgeLeft, l), cfg.EdgeGlyph(EdgeRight, l)
	for y := rows.Start; y < rows.End; y++ {
		cells = append(cells,
			Placed{X: g.Left, Y: y, Cell: terminal.Cell{Rune: left, Fg: fg}},
			Placed{X: g.Right, Y: y, Cell: terminal.Cell{Rune: right, Fg: fg}},
		)
	}
	return cells
}

// planOmni draws only the outermost perimeter, every cell with the omni glyph
func (r *Renderer) planOmni(cells []Placed, width, height int) []Placed {
	g := Geometry(width, height, r.cfg.padding, 0)
	if !g.Drawable() {
		return cells
	}
	return r.planLayer(cells, g)
}

func (r *Renderer) planPadding(cells []Placed, width, height int) []Placed {
	p := r.cfg.padding
	if p <= 0 {
		return cells
	}
	pad := terminal.Cell{Rune: ' ', Bg: terminal.RGBDarkGreen}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if InPadding(width, height, p, x, y) {
				cells = append(cells, Placed{X: x, Y: y, Cell: pad})
			}
		}
	}
	return cells
}
