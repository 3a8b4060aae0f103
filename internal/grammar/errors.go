package grammar

import (
	"errors"
	"fmt"
)

// Error classes shared by every implementation of the grammar.
var (
	// ErrUnterminatedQuotedField reports a quoted field that is still open at
	// the end of input.
	ErrUnterminatedQuotedField = errors.New("unterminated quoted field")
	// ErrTrailingInput reports characters left over after a complete field
	// or document, such as text following a closing quote.
	ErrTrailingInput = errors.New("trailing input")
	// ErrUnexpectedStructure reports input that matches none of the
	// alternatives required at a position.
	ErrUnexpectedStructure = errors.New("unexpected structure")
)

// Error locates a grammar failure.
//
// For ErrUnterminatedQuotedField, Offset is the byte offset of the opening
// quote. For every other class it is the offset of the first character
// that could not be consumed.
type Error struct {
	Offset   int
	Expected string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: expected %s", e.Err, e.Offset, e.Expected)
}

// Unwrap returns the error class.
func (e *Error) Unwrap() error {
	return e.Err
}
