package suggest

import (
	"github.com/luau-tools/luausense/pkg/vocab"
)

// Builtin highlight palette.
const (
	colorKeyword  = "#c4a7e7"
	colorFunction = "#9ccfd8"
	colorConstant = "#f6c177"
	colorOther    = "#908caa"
)

// HighlightMapping assigns a hex color to every category.
type HighlightMapping map[vocab.Category]string

// DefaultHighlightMapping returns the builtin palette. The mapping is total
// over the Category enum.
func DefaultHighlightMapping() HighlightMapping {
	return HighlightMapping{
		vocab.Keyword:  colorKeyword,
		vocab.Function: colorFunction,
		vocab.Constant: colorConstant,
		vocab.Other:    colorOther,
	}
}

// IsHexColor reports whether s is a #RRGGBB color string.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
