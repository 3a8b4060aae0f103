package csv

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shapestone/csvgrammar/internal/grammar"
)

// Options configures the grammar.
type Options struct {
	// Comma is the field separator.
	// It must be a valid rune and not a quote, \r, \n, or the Unicode replacement character.
	// Default: ','
	Comma rune

	// LineBreak is the record separator. It may span several characters,
	// in which case only the whole sequence ends a record.
	// Default: "\n"
	LineBreak string
}

// DefaultOptions returns the default grammar configuration.
func DefaultOptions() Options {
	return Options{
		Comma:     grammar.DefaultComma,
		LineBreak: grammar.DefaultLineBreak,
	}
}

// WriterOptions configures Render.
type WriterOptions struct {
	// Comma is the field separator.
	// Default: ','
	Comma rune

	// LineBreak terminates every record.
	// Default: "\n"
	LineBreak string
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Comma:     grammar.DefaultComma,
		LineBreak: grammar.DefaultLineBreak,
	}
}

// validDelim reports whether r is a valid field delimiter.
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// validLineBreak reports whether s can separate records under comma.
func validLineBreak(s string, comma rune) bool {
	return s != "" && utf8.ValidString(s) && !strings.ContainsRune(s, '"') && !strings.ContainsRune(s, comma)
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	if !validLineBreak(o.LineBreak, o.Comma) {
		return &OptionsError{Field: "LineBreak", Message: "must be non-empty and free of quotes and the delimiter"}
	}
	return nil
}

// Validate checks if the writer options are valid.
func (o WriterOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	if !validLineBreak(o.LineBreak, o.Comma) {
		return &OptionsError{Field: "LineBreak", Message: "must be non-empty and free of quotes and the delimiter"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}

// grammars caches one immutable grammar per configuration.
var grammars sync.Map // Options -> *grammar.Grammar

func grammarFor(opts Options) *grammar.Grammar {
	if opts == DefaultOptions() {
		return grammar.Default()
	}
	if g, ok := grammars.Load(opts); ok {
		return g.(*grammar.Grammar)
	}
	g, _ := grammars.LoadOrStore(opts, grammar.New(opts.Comma, opts.LineBreak))
	return g.(*grammar.Grammar)
}
