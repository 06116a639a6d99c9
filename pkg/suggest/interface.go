// Package suggest is the core, answering prefix completion and highlight
// lookups against the Luau vocabulary.
package suggest

import "github.com/luau-tools/luausense/pkg/vocab"

// ICompleter defines the interface for completion engines
type ICompleter interface {
	// Autocomplete returns identifiers starting with query in vocabulary order
	Autocomplete(query string) ([]string, error)

	// Highlight returns the hex color for an exact identifier name
	Highlight(name string) (string, error)

	// AddIdentifier adds a name with its category to the completer
	AddIdentifier(name string, category vocab.Category)

	// Size returns the number of identifiers loaded
	Size() int
}
