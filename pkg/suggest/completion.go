package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/luau-tools/luausense/pkg/vocab"
)

// Completer answers case-sensitive prefix queries over an identifier set.
// It is read-only after construction, so concurrent lookups need no locking.
type Completer struct {
	trie   *patricia.Trie
	order  []vocab.Identifier // insertion order; trie items index into this
	colors HighlightMapping
}

// NewCompleter returns an empty completer with the builtin palette.
func NewCompleter() *Completer {
	return &Completer{
		trie:   patricia.NewTrie(),
		colors: DefaultHighlightMapping(),
	}
}

// NewDefault returns a completer over the embedded Luau vocabulary.
func NewDefault() *Completer {
	c := NewCompleter()
	for _, id := range vocab.Load() {
		c.AddIdentifier(id.Name, id.Category)
	}
	log.Debugf("Completer ready: %d identifiers", c.Size())
	return c
}

// AddIdentifier inserts a name with its category. Re-inserting an existing
// name is a no-op, matching the vocabulary's first-occurrence-wins rule.
func (c *Completer) AddIdentifier(name string, category vocab.Category) {
	if c.trie.Get(patricia.Prefix(name)) != nil {
		return
	}
	c.trie.Insert(patricia.Prefix(name), len(c.order))
	c.order = append(c.order, vocab.Identifier{Name: name, Category: category})
}

// SetColors applies per-category palette overrides. Values that are not
// #RRGGBB strings are ignored and the builtin color stays in place.
func (c *Completer) SetColors(overrides map[vocab.Category]string) {
	for cat, color := range overrides {
		if !IsHexColor(color) {
			log.Warnf("Ignoring invalid highlight color %q for category %s", color, cat)
			continue
		}
		c.colors[cat] = color
	}
}

// Autocomplete returns every identifier that starts with query, preserving
// vocabulary insertion order. An empty result is not an error; a query
// shorter than MinQueryLength fails with *TooShortError.
func (c *Completer) Autocomplete(query string) ([]string, error) {
	if len(query) < MinQueryLength {
		return nil, &TooShortError{Query: query, MinLength: MinQueryLength}
	}

	var indexes []int
	err := c.trie.VisitSubtree(patricia.Prefix(query), func(p patricia.Prefix, item patricia.Item) error {
		idx, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type %T for entry %s", item, p)
			return nil
		}
		indexes = append(indexes, idx)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil, err
	}

	// the trie visits in byte order, callers expect vocabulary order
	sort.Ints(indexes)

	matches := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		matches = append(matches, c.order[idx].Name)
	}
	return matches, nil
}

// Category returns the category of an exact identifier name, or
// *UnknownIdentifierError when the name is not in the vocabulary.
func (c *Completer) Category(name string) (vocab.Category, error) {
	idx, ok := c.trie.Get(patricia.Prefix(name)).(int)
	if !ok {
		return vocab.Other, &UnknownIdentifierError{Name: name}
	}
	return c.order[idx].Category, nil
}

// Highlight returns the hex color mapped to the category of an exact
// identifier name.
func (c *Completer) Highlight(name string) (string, error) {
	cat, err := c.Category(name)
	if err != nil {
		return "", err
	}
	return c.colors[cat], nil
}

// Size returns the number of identifiers held by the completer.
func (c *Completer) Size() int {
	return len(c.order)
}
