package suggest

import "fmt"

// MinQueryLength is the shortest query Autocomplete accepts.
const MinQueryLength = 2

// TooShortError reports a query below MinQueryLength.
type TooShortError struct {
	Query     string
	MinLength int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("autocomplete query %q is too short: minimum length is %d", e.Query, e.MinLength)
}

// UnknownIdentifierError reports a highlight lookup for a name absent from
// the vocabulary.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}
