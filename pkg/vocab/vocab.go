/*
Package vocab holds the canonical Luau identifier vocabulary.

The vocabulary is embedded data: language keywords, core globals, standard
library functions and the common Roblox globals, each tagged with a category
used for highlight colors. It is built once per process and never mutated
afterwards, so reads are safe without synchronization.
*/
package vocab

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Category classifies an identifier for highlighting.
type Category uint8

const (
	Keyword Category = iota
	Function
	Constant
	Other
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Keyword:
		return "keyword"
	case Function:
		return "function"
	case Constant:
		return "constant"
	default:
		return "other"
	}
}

// Identifier is a single vocabulary entry.
type Identifier struct {
	Name     string
	Category Category
}

var (
	once    sync.Once
	entries []Identifier
	byName  map[string]Identifier
)

// Load builds the vocabulary from the embedded table. It runs once; later
// calls return the same structure. Duplicate names keep their first
// occurrence so insertion order stays stable.
func Load() []Identifier {
	once.Do(build)
	return entries
}

func build() {
	byName = make(map[string]Identifier, len(table))
	entries = make([]Identifier, 0, len(table))

	for _, id := range table {
		if id.Name == "" || strings.ContainsAny(id.Name, " \t\r\n") {
			log.Warnf("Skipping malformed vocabulary entry %q", id.Name)
			continue
		}
		if _, dup := byName[id.Name]; dup {
			continue
		}
		byName[id.Name] = id
		entries = append(entries, id)
	}
	log.Debugf("Vocabulary loaded: %d identifiers", len(entries))
}

// All returns a copy of the ordered vocabulary. Callers may mutate the
// returned slice freely without affecting the store.
func All() []Identifier {
	Load()
	out := make([]Identifier, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an identifier by exact name.
func Lookup(name string) (Identifier, bool) {
	Load()
	id, ok := byName[name]
	return id, ok
}

// Size returns the number of identifiers in the vocabulary.
func Size() int {
	Load()
	return len(entries)
}
