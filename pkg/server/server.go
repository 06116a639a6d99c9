package server

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/luau-tools/luausense/pkg/config"
	"github.com/luau-tools/luausense/pkg/suggest"
)

// request is the decoded envelope; the populated fields select the op.
// A prefix means completion, a bare word means highlight lookup.
type request struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p"`
	Word   string `msgpack:"w"`
	Limit  int    `msgpack:"l"`
}

// Server handles the IPC for Luau completions
type Server struct {
	completer *suggest.Completer
	config    *config.Config
	reader    io.Reader
	writer    io.Writer
}

// NewServer creates a new completion server using stdin/stdout for IPC
func NewServer(completer *suggest.Completer, cfg *config.Config) *Server {
	return &Server{
		completer: completer,
		config:    cfg,
		reader:    bufio.NewReader(os.Stdin),
		writer:    os.Stdout,
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	dec := msgpack.NewDecoder(s.reader)
	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError(req.ID, "invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches an incoming request envelope
func (s *Server) handleRequest(req request) {
	switch {
	case req.Prefix != "":
		s.handleComplete(CompletionRequest{ID: req.ID, Prefix: req.Prefix, Limit: req.Limit})
	case req.Word != "":
		s.handleHighlight(HighlightRequest{ID: req.ID, Word: req.Word})
	default:
		s.sendError(req.ID, "missing 'p' or 'w' parameter", 400)
	}
}

// handleComplete processes a completion request. Query length validation
// beyond the engine's own minimum uses the configured max_query, and the
// result count is clamped to max_limit.
func (s *Server) handleComplete(req CompletionRequest) {
	if len(req.Prefix) > s.config.Server.MaxQuery {
		s.sendError(req.ID, "query exceeds maximum length", 400)
		log.Debug("Query too long in request")
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.CLI.DefaultLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	matches, err := s.completer.Autocomplete(req.Prefix)
	elapsed := time.Since(start)

	if err != nil {
		var tooShort *suggest.TooShortError
		if errors.As(err, &tooShort) {
			s.sendError(req.ID, tooShort.Error(), 400)
			log.Debug("Query too short in request")
			return
		}
		s.sendError(req.ID, "internal server error", 500)
		log.Errorf("Completion failed: %v", err)
		return
	}

	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]CompletionSuggestion, 0, len(matches))
	for _, word := range matches {
		color, err := s.completer.Highlight(word)
		if err != nil {
			// matches come straight from the vocabulary
			log.Errorf("Highlight lookup failed for %q: %v", word, err)
		}
		suggestions = append(suggestions, CompletionSuggestion{Word: word, Color: color})
	}

	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleHighlight processes an exact identifier color lookup
func (s *Server) handleHighlight(req HighlightRequest) {
	color, err := s.completer.Highlight(req.Word)
	if err != nil {
		var unknown *suggest.UnknownIdentifierError
		if errors.As(err, &unknown) {
			s.sendError(req.ID, unknown.Error(), 404)
			log.Debugf("Unknown identifier in request: %q", req.Word)
			return
		}
		s.sendError(req.ID, "internal server error", 500)
		log.Errorf("Highlight failed: %v", err)
		return
	}

	s.sendResponse(HighlightResponse{ID: req.ID, Word: req.Word, Color: color})
}

// sendResponse marshals the given response into msgpack and writes it to
// the client.
func (s *Server) sendResponse(response interface{}) {
	data, err := msgpack.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		return
	}
	if _, err := s.writer.Write(data); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
