package vocab

import (
	"strings"
	"testing"
)

// vocabulary invariants: unique names, non-empty, no whitespace
func TestVocabularyWellFormed(t *testing.T) {
	seen := make(map[string]bool)

	for _, id := range All() {
		if id.Name == "" {
			t.Error("Vocabulary contains an empty name")
		}
		if strings.ContainsAny(id.Name, " \t\r\n") {
			t.Errorf("Name %q contains whitespace", id.Name)
		}
		if seen[id.Name] {
			t.Errorf("Duplicate name %q in vocabulary", id.Name)
		}
		seen[id.Name] = true
	}
}

// repeated loads must return the same immutable structure
func TestLoadIdempotent(t *testing.T) {
	first := Load()
	second := Load()

	if len(first) != len(second) {
		t.Fatalf("Load changed size between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d differs between loads: %v vs %v", i, first[i], second[i])
		}
	}
	if Size() != len(first) {
		t.Errorf("Size() = %d, want %d", Size(), len(first))
	}
}

// callers must not be able to mutate the store through All
func TestAllReturnsCopy(t *testing.T) {
	a := All()
	if len(a) == 0 {
		t.Fatal("Vocabulary is empty")
	}
	original := a[0].Name
	a[0].Name = "mutated"

	b := All()
	if b[0].Name != original {
		t.Errorf("Mutating All() result leaked into the store: got %q, want %q", b[0].Name, original)
	}
}

func TestLookup(t *testing.T) {
	testCases := []struct {
		name     string
		category Category
		found    bool
	}{
		{"local", Keyword, true},
		{"print", Function, true},
		{"math.pi", Constant, true},
		{"math.sqrt", Function, true},
		{"game", Other, true},
		{"coroutine.yield", Function, true},
		{"notreal", Other, false},
		{"Print", Other, false}, // lookup is case-sensitive
		{"", Other, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := Lookup(tc.name)
			if ok != tc.found {
				t.Fatalf("Lookup(%q) found=%v, want %v", tc.name, ok, tc.found)
			}
			if ok && id.Category != tc.category {
				t.Errorf("Lookup(%q) category=%s, want %s", tc.name, id.Category, tc.category)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	testCases := []struct {
		category Category
		want     string
	}{
		{Keyword, "keyword"},
		{Function, "function"},
		{Constant, "constant"},
		{Other, "other"},
		{Category(200), "other"},
	}

	for _, tc := range testCases {
		if got := tc.category.String(); got != tc.want {
			t.Errorf("Category(%d).String() = %q, want %q", tc.category, got, tc.want)
		}
	}
}
