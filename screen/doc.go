// Package screen provides border sinks other than the raw ANSI writer:
// a tcell.Screen adapter and an in-memory grid for previews and tests.
package screen
