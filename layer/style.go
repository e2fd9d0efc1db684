package layer

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/boxframe/terminal"
)

// TextAlignment positions the title along the top edge
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

func (a TextAlignment) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("TextAlignment(%d)", a)
}

// ParseAlignment maps "left", "center" or "right" to a TextAlignment
func ParseAlignment(s string) (TextAlignment, error) {
	for i, name := range alignNames {
		if strings.EqualFold(s, name) {
			return TextAlignment(i), nil
		}
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// FontStyle holds text decorations
type FontStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// NewFontStyle mirrors the positional constructor used by layer configs
func NewFontStyle(bold, italic, underline bool) FontStyle {
	return FontStyle{Bold: bold, Italic: italic, Underline: underline}
}

// Attr converts the style to terminal attributes
func (f FontStyle) Attr() terminal.Attr {
	a := terminal.AttrNone
	if f.Bold {
		a |= terminal.AttrBold
	}
	if f.Italic {
		a |= terminal.AttrItalic
	}
	if f.Underline {
		a |= terminal.AttrUnderline
	}
	return a
}
