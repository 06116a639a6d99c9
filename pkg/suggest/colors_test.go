package suggest

import (
	"testing"

	"github.com/luau-tools/luausense/pkg/vocab"
)

// the mapping must be total over the category enum
func TestDefaultMappingTotal(t *testing.T) {
	palette := DefaultHighlightMapping()

	for _, cat := range []vocab.Category{vocab.Keyword, vocab.Function, vocab.Constant, vocab.Other} {
		color, ok := palette[cat]
		if !ok {
			t.Errorf("No color mapped for category %s", cat)
			continue
		}
		if !IsHexColor(color) {
			t.Errorf("Color %q for category %s is not #RRGGBB", color, cat)
		}
	}
}

func TestIsHexColor(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"#aabbcc", true},
		{"#AABBCC", true},
		{"#123456", true},
		{"#f6c177", true},
		{"", false},
		{"#abc", false},
		{"aabbccd", false},
		{"#12345", false},
		{"#1234567", false},
		{"#gghhii", false},
		{"#aabbc ", false},
	}

	for _, tc := range testCases {
		if got := IsHexColor(tc.input); got != tc.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
