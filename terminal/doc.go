// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for full-screen drawing.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Raw mode, alternate screen and cursor lifecycle with idempotent restore
//   - Buffered cell writer: cursor move, color, one rune, reset; flushed once per frame
//   - Lenient "#RRGGBB" color parsing
//   - SIGWINCH resize detection and raw input bytes for quit keys
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
