package border

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/boxframe/terminal"
)

// recordSink captures cell writes; failAt makes the n-th write (1-based) fail
type recordSink struct {
	cells    []Placed
	flushes  int
	failAt   int
	err      error
	flushErr error
}

func (s *recordSink) SetCell(x, y int, c terminal.Cell) error {
	if s.failAt > 0 && len(s.cells)+1 == s.failAt {
		return s.err
	}
	s.cells = append(s.cells, Placed{X: x, Y: y, Cell: c})
	return nil
}

func (s *recordSink) Flush() error {
	s.flushes++
	return s.flushErr
}

func (s *recordSink) at(x, y int) []Placed {
	var out []Placed
	for _, c := range s.cells {
		if c.X == x && c.Y == y {
			out = append(out, c)
		}
	}
	return out
}

func render(t *testing.T, cfg *Config, w, h int, opts ...Option) *recordSink {
	t.Helper()
	sink := &recordSink{}
	if err := NewRenderer(cfg, sink, opts...).Render(w, h); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sink
}

func TestRenderNestedLayers(t *testing.T) {
	const w, h, padding, layers = 24, 14, 1, 3
	cfg := New().Padding(padding).Width(layers).MustBuild()
	sink := render(t, cfg, w, h)

	want := 0
	for l := 0; l < layers; l++ {
		want += Geometry(w, h, padding, l).CellCount()
	}
	if len(sink.cells) != want {
		t.Fatalf("wrote %d cells, want %d", len(sink.cells), want)
	}

	seen := make(map[[2]int]bool)
	for _, c := range sink.cells {
		key := [2]int{c.X, c.Y}
		if seen[key] {
			t.Fatalf("cell (%d,%d) written twice", c.X, c.Y)
		}
		seen[key] = true

		owners := 0
		for l := 0; l < layers; l++ {
			if Geometry(w, h, padding, l).Contains(c.X, c.Y) {
				owners++
			}
		}
		if owners != 1 {
			t.Fatalf("cell (%d,%d) belongs to %d layers", c.X, c.Y, owners)
		}
	}

	// Each layer's top-left corner sits one cell further in
	for l := 0; l < layers; l++ {
		got := sink.at(padding+l, padding+l)
		if len(got) != 1 || got[0].Rune != '┌' {
			t.Errorf("layer %d top-left corner = %+v", l, got)
		}
	}
	if sink.flushes != 1 {
		t.Errorf("flushed %d times, want 1", sink.flushes)
	}
}

func TestRenderIdempotent(t *testing.T) {
	cfg := New().Padding(2).Width(3).Type(Double).WithColors("#FF0000", "#00FF00").MustBuild()
	first := render(t, cfg, 30, 12)
	second := render(t, cfg, 30, 12)

	if diff := cmp.Diff(first.cells, second.cells); diff != "" {
		t.Errorf("renders differ (-first +second):\n%s", diff)
	}
}

func TestRenderColorFallback(t *testing.T) {
	c0 := terminal.HexColor("#FF0BB0")
	cfg := New().Padding(0).Width(3).WithColors(c0).MustBuild()
	sink := render(t, cfg, 12, 10)

	if len(sink.cells) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, c := range sink.cells {
		if c.Fg != c0.RGB() {
			t.Fatalf("cell (%d,%d) fg = %v, want %v", c.X, c.Y, c.Fg, c0.RGB())
		}
	}
}

func TestRenderPerLayerColors(t *testing.T) {
	cfg := New().Padding(0).Width(3).WithColors("#FF0000", "#00FF00").MustBuild()
	sink := render(t, cfg, 12, 10)

	want := []terminal.RGB{{R: 255}, {G: 255}, {G: 255}}
	for l, fg := range want {
		got := sink.at(l, l)
		if len(got) != 1 || got[0].Fg != fg {
			t.Errorf("layer %d color = %+v, want %v", l, got, fg)
		}
	}
}

func TestRenderDegenerateWindow(t *testing.T) {
	for _, layers := range []int{1, 2, 5} {
		cfg := New().Padding(2).Width(layers).MustBuild()
		sink := render(t, cfg, 4, 4)
		if len(sink.cells) != 0 {
			t.Errorf("layers=%d: wrote %d cells, want 0", layers, len(sink.cells))
		}
	}
}

func TestRenderStopsAtDegenerateLayer(t *testing.T) {
	// 8x6 fits layers 0 to 2; layer 2 is 4x2 and has no vertical run
	cfg := New().Padding(0).Width(5).MustBuild()
	sink := render(t, cfg, 8, 6)

	want := 0
	for l := 0; l < 3; l++ {
		want += Geometry(8, 6, 0, l).CellCount()
	}
	if Geometry(8, 6, 0, 3).Drawable() {
		t.Fatal("layer 3 should not fit")
	}
	if len(sink.cells) != want {
		t.Errorf("wrote %d cells, want %d", len(sink.cells), want)
	}
}

func TestRenderOmni(t *testing.T) {
	const w, h, padding = 10, 7, 1
	cfg := New().
		Padding(padding).
		Width(3).
		HorizontalChars('=').
		VerticalChars('|').
		OmniChar('X').
		MustBuild()
	sink := render(t, cfg, w, h)

	outer := Geometry(w, h, padding, 0)
	if len(sink.cells) != outer.CellCount() {
		t.Fatalf("wrote %d cells, want %d", len(sink.cells), outer.CellCount())
	}
	for _, c := range sink.cells {
		if c.Rune != 'X' {
			t.Errorf("cell (%d,%d) = %q, want 'X'", c.X, c.Y, c.Rune)
		}
		if !outer.Contains(c.X, c.Y) {
			t.Errorf("cell (%d,%d) is not on the outer perimeter", c.X, c.Y)
		}
	}
}

func TestRenderOmniSkipsGlyphValidation(t *testing.T) {
	cfg := New().VerticalChars().OmniChar('X').MustBuild()
	if err := NewRenderer(cfg, &recordSink{}).Render(10, 5); err != nil {
		t.Fatalf("omni mode should ignore empty glyph lists, got %v", err)
	}
}

func TestRenderRejectsZeroWidth(t *testing.T) {
	cfg, err := New().Width(0).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sink := &recordSink{}
	r := NewRenderer(cfg, sink)
	err = r.Render(20, 10)

	var cerr *ConfigError
	if !errors.As(err, &cerr) || !errors.Is(err, ErrZeroWidth) {
		t.Fatalf("Render error = %v, want ConfigError wrapping ErrZeroWidth", err)
	}
	if len(sink.cells) != 0 || sink.flushes != 0 {
		t.Errorf("rejected config wrote %d cells and %d flushes", len(sink.cells), sink.flushes)
	}
	if r.State() != StateRejected {
		t.Errorf("state = %v, want %v", r.State(), StateRejected)
	}
}

func TestRenderRejectsBadGlyphs(t *testing.T) {
	tests := []struct {
		name string
		b    Builder
		want error
	}{
		{"Empty vertical list", New().VerticalChars(), ErrMissingGlyph},
		{"Empty corner list", New().CornerChars(CornerBottomRight), ErrMissingGlyph},
		{"Wide edge glyph", New().HorizontalChars('字'), ErrWideGlyph},
		{"Control glyph", New().CornerChars(CornerTopLeft, '\t'), ErrWideGlyph},
		{"Wide omni glyph", New().BorderChar('字'), ErrWideGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordSink{}
			err := NewRenderer(tt.b.MustBuild(), sink).Render(20, 10)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Render error = %v, want %v", err, tt.want)
			}
			if len(sink.cells) != 0 {
				t.Errorf("wrote %d cells before rejecting", len(sink.cells))
			}
		})
	}
}

func TestRenderCornersExclusive(t *testing.T) {
	cfg := New().Padding(0).Width(1).MustBuild()
	sink := render(t, cfg, 10, 5)

	corners := map[[2]int]rune{
		{0, 0}: '┌',
		{9, 0}: '┐',
		{0, 4}: '└',
		{9, 4}: '┘',
	}
	for pos, glyph := range corners {
		got := sink.at(pos[0], pos[1])
		if len(got) != 1 {
			t.Errorf("corner %v written %d times, want 1", pos, len(got))
			continue
		}
		if got[0].Rune != glyph {
			t.Errorf("corner %v = %q, want %q", pos, got[0].Rune, glyph)
		}
	}
	if len(sink.cells) != 26 {
		t.Errorf("wrote %d cells, want 26", len(sink.cells))
	}
}

func TestRenderPerLayerGlyphs(t *testing.T) {
	cfg := New().
		Padding(0).
		Width(3).
		HorizontalChars('━', '─').
		CornerChars(CornerTopLeft, '┏', '╭').
		MustBuild()
	sink := render(t, cfg, 12, 10)

	wantTop := []rune{'━', '─', '─'}
	wantCorner := []rune{'┏', '╭', '╭'}
	for l := 0; l < 3; l++ {
		if got := sink.at(l+1, l); len(got) != 1 || got[0].Rune != wantTop[l] {
			t.Errorf("layer %d top edge = %+v, want %q", l, got, wantTop[l])
		}
		if got := sink.at(l, l); len(got) != 1 || got[0].Rune != wantCorner[l] {
			t.Errorf("layer %d corner = %+v, want %q", l, got, wantCorner[l])
		}
	}
}

func TestRenderInvisible(t *testing.T) {
	cfg := New().Visible(false).Width(0).MustBuild()
	sink := &recordSink{}
	r := NewRenderer(cfg, sink)

	if err := r.Render(20, 10); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(sink.cells) != 0 || sink.flushes != 0 {
		t.Errorf("invisible border wrote %d cells and %d flushes", len(sink.cells), sink.flushes)
	}
	if r.State() != StateDone {
		t.Errorf("state = %v, want %v", r.State(), StateDone)
	}
}

func TestRenderSinkError(t *testing.T) {
	ioErr := errors.New("write /dev/tty: input/output error")
	sink := &recordSink{failAt: 3, err: ioErr}
	r := NewRenderer(New().Padding(0).MustBuild(), sink)

	err := r.Render(10, 5)
	var rerr *RenderError
	if !errors.As(err, &rerr) || !errors.Is(err, ioErr) {
		t.Fatalf("Render error = %v, want RenderError wrapping %v", err, ioErr)
	}
	if len(sink.cells) != 2 {
		t.Errorf("expected 2 cells before failure, got %d", len(sink.cells))
	}
	if sink.flushes != 0 {
		t.Error("aborted render should not flush")
	}
	if r.State() != StateAborted {
		t.Errorf("state = %v, want %v", r.State(), StateAborted)
	}
}

func TestRenderFlushError(t *testing.T) {
	ioErr := errors.New("flush failed")
	sink := &recordSink{flushErr: ioErr}
	err := NewRenderer(New().MustBuild(), sink).Render(10, 5)
	if !errors.Is(err, ioErr) {
		t.Fatalf("Render error = %v, want %v", err, ioErr)
	}
}

func TestRenderDebugPadding(t *testing.T) {
	cfg := New().Padding(1).MustBuild()
	sink := render(t, cfg, 6, 4, WithDebug(true))

	padding := 0
	for _, c := range sink.cells {
		if c.Bg == terminal.RGBDarkGreen {
			padding++
			if !InPadding(6, 4, 1, c.X, c.Y) {
				t.Errorf("debug cell (%d,%d) outside padding", c.X, c.Y)
			}
		}
	}
	if padding != 6*4-4*2 {
		t.Errorf("painted %d padding cells, want %d", padding, 6*4-4*2)
	}
}

func TestPlanMatchesRender(t *testing.T) {
	cfg := New().Padding(1).Width(2).Type(Dotted).MustBuild()
	r := NewRenderer(cfg, &recordSink{})

	plan, err := r.Plan(16, 9)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if r.State() != StateValidated {
		t.Errorf("state after Plan = %v, want %v", r.State(), StateValidated)
	}

	sink := render(t, cfg, 16, 9)
	if diff := cmp.Diff(plan, sink.cells); diff != "" {
		t.Errorf("plan and render differ (-plan +render):\n%s", diff)
	}
}

func TestRenderLogsDegenerateLayer(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	cfg := New().Padding(0).Width(4).MustBuild()
	render(t, cfg, 6, 4, WithLogger(log))

	if !strings.Contains(buf.String(), "layer degenerate") {
		t.Errorf("expected degenerate layer log, got %q", buf.String())
	}
}
