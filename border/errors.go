package border

import (
	"errors"
	"fmt"
)

// Configuration problems, matched with errors.Is
var (
	ErrZeroWidth       = errors.New("border width cannot be 0")
	ErrMissingGlyph    = errors.New("appropriate character not provided")
	ErrWideGlyph       = errors.New("glyph must occupy exactly one cell")
	ErrTooManyColors   = errors.New("more colors than border layers")
	ErrNegativePadding = errors.New("padding cannot be negative")
	ErrNegativeWidth   = errors.New("border width cannot be negative")
)

// ConfigError reports a caller-fixable problem found before any cell is drawn
type ConfigError struct {
	Field  string
	Reason error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "border config: " + e.Reason.Error()
	}
	return fmt.Sprintf("border config: %s: %v", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}

func configErr(field string, reason error) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// RenderError reports a sink failure while drawing; cells written before it stay on screen
type RenderError struct {
	X, Y int
	Err  error
}

func (e *RenderError) Error() string {
	if e.X < 0 {
		return fmt.Sprintf("border render: flush: %v", e.Err)
	}
	return fmt.Sprintf("border render: cell (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
