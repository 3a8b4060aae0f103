package csv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/csvgrammar/internal/grammar"
)

// Error classes. Every *ParseError unwraps to exactly one of these.
var (
	// ErrUnterminatedQuotedField indicates a quoted field still open at end of input.
	// The error offset is that of the opening quote.
	ErrUnterminatedQuotedField = grammar.ErrUnterminatedQuotedField

	// ErrTrailingInput indicates characters left after a complete field or document,
	// such as text following a closing quote.
	ErrTrailingInput = grammar.ErrTrailingInput

	// ErrUnexpectedStructure indicates input that matches none of the grammar's
	// alternatives at a position where one is required.
	ErrUnexpectedStructure = grammar.ErrUnexpectedStructure
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	// Offset is the byte offset of the failure.
	Offset int
	// Line is the line of the failure (1-indexed, counting '\n').
	Line int
	// Column is the byte column of the failure (1-indexed).
	Column int
	// Expected describes the construct the grammar was looking for.
	Expected string
	// Err is the error class.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: %v at offset %d (line %d, column %d): expected %s",
		e.Err, e.Offset, e.Line, e.Column, e.Expected)
}

// Unwrap returns the error class.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError positions a grammar error within input.
func newParseError(input string, err error) error {
	var gerr *grammar.Error
	if !errors.As(err, &gerr) {
		return err
	}
	line, column := position(input, gerr.Offset)
	return &ParseError{
		Offset:   gerr.Offset,
		Line:     line,
		Column:   column,
		Expected: gerr.Expected,
		Err:      gerr.Err,
	}
}

// position converts a byte offset into a 1-indexed line and column.
func position(input string, offset int) (line, column int) {
	if offset > len(input) {
		offset = len(input)
	}
	prefix := input[:offset]
	line = strings.Count(prefix, "\n") + 1
	column = offset - strings.LastIndexByte(prefix, '\n')
	return line, column
}
