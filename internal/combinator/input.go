// Package combinator provides generic parser-combinator primitives.
//
// A Parser is a function from an immutable Input cursor to a Result. Parsers
// hold no mutable state, so a grammar composed from them can be shared by any
// number of goroutines; every parse call brings its own Input.
//
// The alternation and repetition combinators distinguish failures that
// consumed input from failures that did not:
//
//   - Or tries every alternative in order, regardless of consumption.
//   - XOr only tries the second alternative when the first failed without
//     consuming input.
//   - Many rewinds any failed or non-advancing attempt and stops.
//   - XMany stops like Many, but propagates a failure that consumed input.
package combinator

import "unicode/utf8"

// Input is an immutable cursor over the source text.
// Offsets are byte offsets into the source.
type Input struct {
	source string
	offset int
}

// NewInput returns a cursor positioned at the start of source.
func NewInput(source string) Input {
	return Input{source: source}
}

// Source returns the complete text the cursor walks over.
func (in Input) Source() string {
	return in.source
}

// Offset returns the byte offset of the cursor.
func (in Input) Offset() int {
	return in.offset
}

// AtEnd reports whether the cursor has reached the end of the source.
func (in Input) AtEnd() bool {
	return in.offset >= len(in.source)
}

// Rest returns the unconsumed text.
func (in Input) Rest() string {
	return in.source[in.offset:]
}

// Current decodes the rune under the cursor and returns it with its width.
// At the end of input it returns utf8.RuneError and a width of zero.
func (in Input) Current() (rune, int) {
	if in.AtEnd() {
		return utf8.RuneError, 0
	}
	if c := in.source[in.offset]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(in.source[in.offset:])
}

// Advance returns a cursor moved forward by n bytes.
func (in Input) Advance(n int) Input {
	return Input{source: in.source, offset: in.offset + n}
}
