// Package border draws concentric rectangular frames onto a fixed-size cell grid.
//
// A Config is built once with a Builder and is read-only afterwards. A Renderer validates the
// config, computes every cell of every layer for the window size it is given, and writes the
// cells to a Sink, flushing once per frame.
//
// Layer 0 is the outermost frame, padding cells in from the window edge. Each deeper layer is
// one cell further in. Layers that no longer fit are skipped.
//
//	cfg, err := border.New().
//		Padding(1).
//		Width(3).
//		Type(border.Double).
//		WithColors("#FF0BB0", "#00FFAA").
//		Build()
//	if err != nil {
//		return err
//	}
//	w, h := term.Size()
//	err = border.NewRenderer(cfg, term.Writer()).Render(w, h)
package border
