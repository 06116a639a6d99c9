/*
Package server implements msgpack IPC for Luau completion services.

The server package provides a minimal interface for prefix completion and
highlight lookups using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports completion requests
and highlight requests. Messages are processed synchronously with timing
info included in completion responses.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation.

Completion requests use this structure:

	{"id": "req_001", "p": "loc", "l": 24}

The server responds with matches in vocabulary order, each carrying its
highlight color:

	{"id": "req_001", "s": [{"w": "local", "h": "#c4a7e7"}], "c": 1, "t": 38}

Highlight requests resolve a single exact identifier to its color:

	{"id": "hl_001", "w": "print"}
	{"id": "hl_001", "w": "print", "h": "#9ccfd8"}

Error responses carry a message and an HTTP-style code: 400 for malformed
or too-short requests, 404 for identifiers absent from the vocabulary.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON and
the binary format keeps per-request latency low for editor integrations.

# Message Types

CompletionRequest and CompletionResponse handle the main prefix suggestion.
Request includes a query string and optional limit for result count.
Responses contain suggestion arrays with word and color strings, plus
timing data in microseconds.

HighlightRequest and HighlightResponse handle exact-name color lookups.
*/
package server

// CompletionRequest - minimal completion request
type CompletionRequest struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word  string `msgpack:"w"`
	Color string `msgpack:"h,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// HighlightRequest - exact identifier color lookup
type HighlightRequest struct {
	ID   string `msgpack:"id"`
	Word string `msgpack:"w"`
}

// HighlightResponse - highlight lookup response
type HighlightResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Color string `msgpack:"h"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
