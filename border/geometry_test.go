package border

import "testing"

func TestGeometry(t *testing.T) {
	tests := []struct {
		name                     string
		w, h, padding, layer     int
		left, right, top, bottom int
		drawable                 bool
		cols, rows               Span
	}{
		{"Full window", 10, 5, 0, 0, 0, 9, 0, 4, true, Span{1, 9}, Span{1, 4}},
		{"Padded", 10, 5, 1, 0, 1, 8, 1, 3, true, Span{2, 8}, Span{2, 3}},
		{"Second layer", 10, 6, 1, 1, 2, 7, 2, 3, true, Span{3, 7}, Span{3, 3}},
		{"Two by two", 4, 4, 1, 0, 1, 2, 1, 2, true, Span{2, 2}, Span{2, 2}},
		{"Padding swallows window", 4, 4, 2, 0, 2, 1, 2, 1, false, Span{3, 1}, Span{3, 1}},
		{"Single column", 5, 8, 2, 0, 2, 2, 2, 5, false, Span{3, 2}, Span{3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Geometry(tt.w, tt.h, tt.padding, tt.layer)
			if g.Left != tt.left || g.Right != tt.right || g.Top != tt.top || g.Bottom != tt.bottom {
				t.Errorf("edges = L%d R%d T%d B%d, want L%d R%d T%d B%d",
					g.Left, g.Right, g.Top, g.Bottom, tt.left, tt.right, tt.top, tt.bottom)
			}
			if g.Drawable() != tt.drawable {
				t.Errorf("Drawable() = %v, want %v", g.Drawable(), tt.drawable)
			}
			if g.Cols() != tt.cols {
				t.Errorf("Cols() = %v, want %v", g.Cols(), tt.cols)
			}
			if g.Rows() != tt.rows {
				t.Errorf("Rows() = %v, want %v", g.Rows(), tt.rows)
			}
		})
	}
}

func TestLayersAreDisjoint(t *testing.T) {
	const w, h, padding, layers = 20, 12, 1, 4

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			owners := 0
			for l := 0; l < layers; l++ {
				if Geometry(w, h, padding, l).Contains(x, y) {
					owners++
				}
			}
			if owners > 1 {
				t.Fatalf("cell (%d,%d) belongs to %d layers", x, y, owners)
			}
		}
	}
}

func TestCellCount(t *testing.T) {
	if got := Geometry(10, 5, 0, 0).CellCount(); got != 26 {
		t.Errorf("10x5 frame covers %d cells, want 26", got)
	}
	if got := Geometry(4, 4, 1, 0).CellCount(); got != 4 {
		t.Errorf("2x2 frame covers %d cells, want 4", got)
	}
	if got := Geometry(4, 4, 2, 0).CellCount(); got != 0 {
		t.Errorf("degenerate frame covers %d cells, want 0", got)
	}
}

func TestSpan(t *testing.T) {
	if !(Span{3, 3}).Empty() || (Span{3, 3}).Len() != 0 {
		t.Error("equal bounds should be empty")
	}
	if !(Span{5, 2}).Empty() || (Span{5, 2}).Len() != 0 {
		t.Error("inverted bounds should be empty")
	}
	if (Span{1, 4}).Len() != 3 {
		t.Error("expected 3 cells")
	}
}

func TestInPadding(t *testing.T) {
	if !InPadding(10, 5, 1, 0, 2) || !InPadding(10, 5, 1, 9, 2) || !InPadding(10, 5, 1, 3, 4) {
		t.Error("expected edge cells inside padding")
	}
	if InPadding(10, 5, 1, 1, 1) {
		t.Error("layer 0 corner is not padding")
	}
	if InPadding(10, 5, 0, 0, 0) {
		t.Error("zero padding has no padding cells")
	}
}
