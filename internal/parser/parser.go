// Package parser implements LL(1) recursive descent parsing of the CSV grammar
// over Shape tokens. Each production rule corresponds to a parse function and
// the result is Shape's AST. It accepts the same language as internal/grammar
// and reports the same error classes.
package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/csvgrammar/internal/grammar"
	"github.com/shapestone/csvgrammar/internal/tokenizer"
)

// Options configures the parser behavior.
type Options struct {
	// Comma is the field delimiter. Default: ','
	Comma rune
	// LineBreak is the record separator. Default: "\n"
	LineBreak string
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Comma:     grammar.DefaultComma,
		LineBreak: grammar.DefaultLineBreak,
	}
}

// Parser implements LL(1) recursive descent parsing for CSV.
// It maintains a single token lookahead for predictive parsing.
//
// Token values are runes, so field values and offsets are read from the
// source bytes the tokens cover.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options

	source string
	// offset is the byte offset of the current token in source.
	offset int
}

// NewParser creates a new CSV parser for the given input string.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new CSV parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithStreamAndOptions(shapetokenizer.NewStream(input), tokenizer.Options{
		Comma:     opts.Comma,
		LineBreak: opts.LineBreak,
	})

	p := &Parser{
		tokenizer: &tok,
		opts:      opts,
		source:    input,
	}
	p.load()
	return p
}

// NewParserFromReaderWithOptions reads r to the end and creates a parser
// over its contents.
func NewParserFromReaderWithOptions(r io.Reader, opts Options) (*Parser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return NewParserWithOptions(string(data), opts), nil
}

// Parse parses the input and returns an AST representing the CSV document.
//
// Grammar:
//
//	Document = { Record } End ;
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of LiteralNode fields. Empty input yields an empty array.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	records := make([]ast.SchemaNode, 0, 16)

	for p.hasToken {
		record, err := p.parseRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// parseRecord parses a single CSV record.
//
// Grammar:
//
//	Record = Field { "," Field } RecordTerminator ;
//	RecordTerminator = End | LineBreak End | LineBreak ;
//
// A record is only started when a token is available, so the terminator
// either consumes one line break or stands at the end of input.
func (p *Parser) parseRecord() (*ast.ArrayDataNode, error) {
	startPos := p.position()
	fields := make([]ast.SchemaNode, 0, 8)

	field, err := p.parseField()
	if err != nil {
		return nil, err
	}
	fields = append(fields, field)

	for p.is(tokenizer.TokenComma) {
		p.advance()

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	switch {
	case !p.hasToken:
	case p.is(tokenizer.TokenLineBreak):
		p.advance()
	default:
		return nil, &grammar.Error{
			Offset:   p.offset,
			Expected: fmt.Sprintf("%q or line break or end of input", p.opts.Comma),
			Err:      grammar.ErrTrailingInput,
		}
	}

	return ast.NewArrayDataNode(fields, startPos), nil
}

// parseField parses a single CSV field.
//
// Grammar:
//
//	Field = QuotedField XOR { LiteralContent } ;
//
// Only a quote at the start of a field opens a quoted field.
func (p *Parser) parseField() (*ast.LiteralNode, error) {
	if p.is(tokenizer.TokenDQuote) {
		return p.parseQuotedField()
	}
	return p.parseLiteralField(), nil
}

// parseQuotedField parses a quoted CSV field.
//
// Grammar:
//
//	QuotedField = '"' { QuotedContent } '"' ;
//	QuotedContent = <any character except '"'> | '""' ;
//
// Returns *ast.LiteralNode with unescaped string value.
// Delimiters and line breaks inside the quotes are literal.
func (p *Parser) parseQuotedField() (*ast.LiteralNode, error) {
	startPos := p.position()
	startOffset := p.offset
	p.advance() // opening quote

	var value strings.Builder

	for {
		if !p.hasToken {
			return nil, &grammar.Error{
				Offset:   startOffset,
				Expected: `closing '"'`,
				Err:      grammar.ErrUnterminatedQuotedField,
			}
		}

		if p.is(tokenizer.TokenDQuote) {
			p.advance()
			if !p.is(tokenizer.TokenDQuote) {
				return ast.NewLiteralNode(value.String(), startPos), nil
			}
			// Escaped quote: ""
			value.WriteByte('"')
			p.advance()
			continue
		}

		// Content, delimiters and line breaks are all literal here
		value.WriteString(p.span())
		p.advance()
	}
}

// parseLiteralField parses an unquoted CSV field.
//
// Grammar:
//
//	LiteralContent = <any character except delimiter and line break> ;
//
// Quotes after the first character are ordinary content.
func (p *Parser) parseLiteralField() *ast.LiteralNode {
	startPos := p.position()
	start := p.offset

	for p.is(tokenizer.TokenContent) || p.is(tokenizer.TokenDQuote) {
		p.advance()
	}

	return ast.NewLiteralNode(p.source[start:p.offset], startPos)
}

// Helper methods

// is reports whether the current token has the given kind.
func (p *Parser) is(kind string) bool {
	return p.hasToken && p.current.Kind() == kind
}

// load reads the next token without moving the byte offset.
func (p *Parser) load() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}

// advance moves past the current token.
func (p *Parser) advance() {
	if p.current != nil {
		p.offset += len(p.span())
	}
	p.load()
}

// span returns the source bytes of the current token. Each rune of the
// token stands for one decoded source rune, and an invalid byte decodes
// as a single utf8.RuneError.
func (p *Parser) span() string {
	end := p.offset
	for n := utf8.RuneCountInString(p.current.ValueString()); n > 0 && end < len(p.source); n-- {
		_, size := utf8.DecodeRuneInString(p.source[end:])
		end += size
	}
	return p.source[p.offset:end]
}

// position returns current position for AST nodes.
func (p *Parser) position() ast.Position {
	if p.hasToken && p.current != nil {
		return ast.NewPosition(
			p.current.Offset(),
			p.current.Row(),
			p.current.Column(),
		)
	}
	return ast.ZeroPosition()
}

// Records extracts the field values from an AST produced by Parse.
func Records(node ast.SchemaNode) ([][]string, error) {
	doc, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode document, got %T", node)
	}

	records := make([][]string, 0, doc.Len())
	for i, elem := range doc.Elements() {
		record, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("record %d: expected *ast.ArrayDataNode, got %T", i, elem)
		}
		fields := make([]string, 0, record.Len())
		for j, f := range record.Elements() {
			lit, ok := f.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("record %d field %d: expected *ast.LiteralNode, got %T", i, j, f)
			}
			s, ok := lit.Value().(string)
			if !ok {
				return nil, fmt.Errorf("record %d field %d: expected string value, got %T", i, j, lit.Value())
			}
			fields = append(fields, s)
		}
		records = append(records, fields)
	}
	return records, nil
}
