package suggest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/luau-tools/luausense/pkg/vocab"
)

func TestAutocomplete(t *testing.T) {
	c := NewDefault()

	testCases := []struct {
		query       string
		want        []string
		description string
	}{
		{"coroutine.r", []string{"coroutine.resume", "coroutine.running"}, "Shared prefix inside a library"},
		{"loc", []string{"local"}, "Single keyword match"},
		{"local", []string{"local"}, "Query equal to a full identifier"},
		{"pc", []string{"pcall"}, "Single function match"},
		{"string.g", []string{"string.gmatch", "string.gsub"}, "Library function pair"},
		{"Pri", []string{}, "Case-sensitive, no folding"},
		{"zzzznotaword", []string{}, "No matches is not an error"},
		{"locallylongerthananyentry", []string{}, "Query longer than any entry"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := c.Autocomplete(tc.query)
			if err != nil {
				t.Fatalf("Autocomplete(%q) returned error: %v", tc.query, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Autocomplete(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

// queries below two characters must fail and produce no result
func TestAutocompleteTooShort(t *testing.T) {
	c := NewDefault()

	for _, query := range []string{"", "p", "z"} {
		matches, err := c.Autocomplete(query)
		if matches != nil {
			t.Errorf("Autocomplete(%q) returned a partial result: %v", query, matches)
		}

		var tooShort *TooShortError
		if !errors.As(err, &tooShort) {
			t.Fatalf("Autocomplete(%q) error = %v, want *TooShortError", query, err)
		}
		if tooShort.Query != query {
			t.Errorf("TooShortError.Query = %q, want %q", tooShort.Query, query)
		}
		if tooShort.MinLength != MinQueryLength {
			t.Errorf("TooShortError.MinLength = %d, want %d", tooShort.MinLength, MinQueryLength)
		}
	}
}

// results follow insertion order, not the trie's byte order
func TestVocabularyOrderPreserved(t *testing.T) {
	c := NewCompleter()
	c.AddIdentifier("private", vocab.Keyword)
	c.AddIdentifier("print", vocab.Function)

	got, err := c.Autocomplete("pri")
	if err != nil {
		t.Fatalf("Autocomplete returned error: %v", err)
	}
	want := []string{"private", "print"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(\"pri\") = %v, want %v", got, want)
	}
}

func TestAutocompleteIdempotent(t *testing.T) {
	c := NewDefault()

	first, err := c.Autocomplete("table.")
	if err != nil {
		t.Fatalf("Autocomplete returned error: %v", err)
	}
	second, err := c.Autocomplete("table.")
	if err != nil {
		t.Fatalf("Autocomplete returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated calls differ: %v vs %v", first, second)
	}
}

// re-inserting a name must not change its category or grow the set
func TestAddIdentifierFirstWins(t *testing.T) {
	c := NewCompleter()
	c.AddIdentifier("print", vocab.Function)
	c.AddIdentifier("print", vocab.Keyword)

	if c.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", c.Size())
	}
	cat, err := c.Category("print")
	if err != nil {
		t.Fatalf("Category returned error: %v", err)
	}
	if cat != vocab.Function {
		t.Errorf("Category = %s, want function", cat)
	}
}

func TestHighlight(t *testing.T) {
	c := NewDefault()
	palette := DefaultHighlightMapping()

	testCases := []struct {
		name string
		want string
	}{
		{"local", palette[vocab.Keyword]},
		{"print", palette[vocab.Function]},
		{"math.pi", palette[vocab.Constant]},
		{"game", palette[vocab.Other]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Highlight(tc.name)
			if err != nil {
				t.Fatalf("Highlight(%q) returned error: %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("Highlight(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestHighlightUnknownIdentifier(t *testing.T) {
	c := NewDefault()

	color, err := c.Highlight("notreal")
	if color != "" {
		t.Errorf("Highlight returned a color for an unknown name: %q", color)
	}

	var unknown *UnknownIdentifierError
	if !errors.As(err, &unknown) {
		t.Fatalf("Highlight error = %v, want *UnknownIdentifierError", err)
	}
	if unknown.Name != "notreal" {
		t.Errorf("UnknownIdentifierError.Name = %q, want %q", unknown.Name, "notreal")
	}
}

func TestSetColors(t *testing.T) {
	c := NewDefault()
	palette := DefaultHighlightMapping()

	c.SetColors(map[vocab.Category]string{
		vocab.Keyword:  "#ff0000",
		vocab.Function: "magenta", // not a hex color, must be ignored
	})

	got, err := c.Highlight("local")
	if err != nil {
		t.Fatalf("Highlight returned error: %v", err)
	}
	if got != "#ff0000" {
		t.Errorf("Keyword override not applied: got %q", got)
	}

	got, err = c.Highlight("print")
	if err != nil {
		t.Fatalf("Highlight returned error: %v", err)
	}
	if got != palette[vocab.Function] {
		t.Errorf("Invalid override replaced builtin color: got %q", got)
	}
}
