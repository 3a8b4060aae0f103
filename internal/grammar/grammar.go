// Package grammar implements the CSV line grammar as a composition of
// parser combinators.
//
// Rules, bottom-up:
//
//	Separator        = "," ;
//	QuoteDelimiter   = '"' ;
//	QuotedContent    = ( AnyChar - QuoteDelimiter ) | '""' ;
//	QuotedField      = QuoteDelimiter { QuotedContent } QuoteDelimiter ;
//	LineBreak        = <configured line separator> ;
//	LiteralContent   = AnyChar - Separator - LineBreak ;
//	Field            = QuotedField XOR { LiteralContent } ;
//	RecordTerminator = End | LineBreak End | LineBreak ;
//	Record           = Field { Separator Field } RecordTerminator ;
//	Document         = { Record } End ;
//
// Alternatives are resolved first-match in the order listed. A Field that
// opens with a quote is committed to QuotedField, so a quote never falls
// back to literal content. A Record that matches without consuming input
// ends the Document and is not emitted, which is why empty input yields no
// records and a final line break adds no empty record.
package grammar

import (
	"strconv"

	"github.com/shapestone/csvgrammar/internal/combinator"
)

const (
	// DefaultComma is the default field separator.
	DefaultComma = ','
	// DefaultLineBreak is the default record separator.
	DefaultLineBreak = "\n"
)

// Grammar is a compiled CSV grammar for one separator and line break.
// It is immutable and safe for concurrent use.
type Grammar struct {
	comma     rune
	lineBreak string

	field      combinator.Parser[string]
	record     combinator.Parser[[]string]
	terminator combinator.Parser[string]
	document   combinator.Parser[[][]string]
}

var defaultGrammar = New(DefaultComma, DefaultLineBreak)

// Default returns the grammar for "," and "\n".
func Default() *Grammar {
	return defaultGrammar
}

// New composes the grammar for the given separator and line break.
// The caller is responsible for validating them.
func New(comma rune, lineBreak string) *Grammar {
	g := &Grammar{comma: comma, lineBreak: lineBreak}

	separator := combinator.Char(comma)
	quote := combinator.Char('"')
	escapedQuote := combinator.Right(quote, quote)

	quotedContent := combinator.Or(
		combinator.Recognize(combinator.Except(combinator.AnyChar(), quote)),
		combinator.Map(escapedQuote, func(rune) string { return `"` }),
	)
	quotedField := combinator.Classify(
		combinator.Text(combinator.Between(quote, combinator.Many(quotedContent), quote)),
		ErrUnterminatedQuotedField,
	)

	newLine := combinator.String(lineBreak)
	literalContent := combinator.Except(
		combinator.Except(combinator.AnyChar(), separator),
		newLine,
	)
	literalField := combinator.Recognize(combinator.Many(literalContent))

	g.field = combinator.XOr(quotedField, literalField)

	g.terminator = combinator.Label(
		combinator.Or(
			combinator.End(combinator.Return("")),
			combinator.End(newLine),
			newLine,
		),
		strconv.QuoteRune(comma)+" or line break or end of input",
	)

	rest := combinator.XMany(combinator.Right(separator, g.field))
	g.record = combinator.Classify(
		combinator.Left(combinator.Cons(g.field, rest), g.terminator),
		ErrTrailingInput,
	)

	g.document = combinator.Classify(
		combinator.End(combinator.XMany(g.record)),
		ErrTrailingInput,
	)
	return g
}

// Comma returns the field separator.
func (g *Grammar) Comma() rune {
	return g.comma
}

// LineBreak returns the record separator.
func (g *Grammar) LineBreak() string {
	return g.lineBreak
}

// Parse consumes the whole input and returns its records.
// On failure it returns a nil slice and an *Error.
func (g *Grammar) Parse(input string) ([][]string, error) {
	r := combinator.Parse(g.document, input)
	if !r.Ok() {
		return nil, toError(r.Failure)
	}
	return r.Value, nil
}

func toError(f *combinator.Failure) *Error {
	switch f.Err {
	case ErrUnterminatedQuotedField:
		return &Error{Offset: f.Start, Expected: `closing '"'`, Err: f.Err}
	case ErrTrailingInput:
		return &Error{Offset: f.Offset, Expected: f.ExpectedString(), Err: f.Err}
	}
	return &Error{Offset: f.Offset, Expected: f.ExpectedString(), Err: ErrUnexpectedStructure}
}
