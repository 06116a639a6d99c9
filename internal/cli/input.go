// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/luau-tools/luausense/internal/logger"
	"github.com/luau-tools/luausense/pkg/suggest"
)

// InputHandler processes user input from stdin, providing suggestions.
// It accepts flags to control behavior such as maximum query length and
// suggestion limits.
type InputHandler struct {
	completer      suggest.ICompleter
	maxQueryLength int
	suggestLimit   int
	out            *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, maxLength, limit int) *InputHandler {
	return &InputHandler{
		completer:      completer,
		maxQueryLength: maxLength,
		suggestLimit:   limit,
		out:            logger.New(""),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.out.Print("LuauSense CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a query and press Enter to see the suggestions (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput processes a single query to generate suggestions.
// It validates the query length, then asks the completer for matches.
// Results are printed styled with each identifier's highlight color.
func (h *InputHandler) handleInput(query string) {
	if len(query) > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	matches, err := h.completer.Autocomplete(query)
	if err != nil {
		var tooShort *suggest.TooShortError
		if errors.As(err, &tooShort) {
			log.Errorf("Query too short: %q (minimum %d characters)", tooShort.Query, tooShort.MinLength)
			return
		}
		log.Errorf("Completion failed: %v", err)
		return
	}

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(matches) == 0 {
		log.Warnf("No suggestions found for query: '%s'", query)
		return
	}

	if len(matches) > h.suggestLimit {
		matches = matches[:h.suggestLimit]
	}

	h.out.Printf("Found %d suggestions for query '%s':", len(matches), query)
	for i, word := range matches {
		h.out.Printf("%2d. %s", i+1, h.styled(word))
	}
}

// styled renders a word in its highlight color.
func (h *InputHandler) styled(word string) string {
	color, err := h.completer.Highlight(word)
	if err != nil {
		return word
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(word)
}
