// Package csv parses CSV text with a composable, backtracking-free grammar.
//
// The grammar is built from small parsing rules (see internal/grammar):
//
//	Field            = QuotedField XOR { LiteralContent } ;
//	Record           = Field { "," Field } RecordTerminator ;
//	RecordTerminator = End | LineBreak End | LineBreak ;
//	Document         = { Record } End ;
//
// A field is quoted only when it opens with a quote; a quote anywhere else is
// ordinary content. Inside quotes, separators and line breaks are literal
// and a doubled quote stands for one quote. Every record has at least one
// field, so an empty line yields a record holding one empty field, while
// empty input yields no records and a final line break adds no record.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call walks its own cursor over immutable grammar rules.
//
//	go func() { csv.Parse(input1) }()
//	go func() { csv.Parse(input2) }()
//
// # Errors
//
// Parsing either returns a complete Document or a *ParseError describing the
// first failure; there is no partial result and no recovery. Use errors.Is
// with ErrUnterminatedQuotedField, ErrTrailingInput or ErrUnexpectedStructure
// to classify a failure.
//
//	doc, err := csv.Parse(`a,"b`)
//	var perr *csv.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Offset, perr.Expected)
//	}
package csv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/csvgrammar/internal/fastparser"
	"github.com/shapestone/csvgrammar/internal/grammar"
	"github.com/shapestone/csvgrammar/internal/parser"
)

// Parse parses input with the default options ("," and "\n").
//
// Example:
//
//	doc, err := csv.Parse("1,2\n3,4")
//	// doc: [["1" "2"] ["3" "4"]]
func Parse(input string) (Document, error) {
	return parseWith(grammar.Default(), input)
}

// ParseWithOptions parses input with a custom separator or line break.
//
// Example:
//
//	opts := csv.DefaultOptions()
//	opts.LineBreak = "\r\n"
//	doc, err := csv.ParseWithOptions("a,b\r\nc,d\r\n", opts)
func ParseWithOptions(input string, opts Options) (Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parseWith(grammarFor(opts), input)
}

// ParseReader reads the whole stream and parses it with the default options.
// The grammar works on a materialized buffer, so memory use grows with the input.
func ParseReader(reader io.Reader) (Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseAST parses input with the token-driven parser and returns Shape's AST:
//   - *ast.ArrayDataNode for the document (array of records)
//   - each record is an *ast.ArrayDataNode of fields
//   - each field is an *ast.LiteralNode holding a string
//
// It accepts exactly the same language as Parse.
func ParseAST(input string) (ast.SchemaNode, error) {
	return ParseASTWithOptions(input, DefaultOptions())
}

// ParseASTWithOptions is ParseAST with a custom separator or line break.
func ParseASTWithOptions(input string, opts Options) (ast.SchemaNode, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := parser.NewParserWithOptions(input, parser.Options{
		Comma:     opts.Comma,
		LineBreak: opts.LineBreak,
	})
	node, err := p.Parse()
	if err != nil {
		return nil, newParseError(input, err)
	}
	return node, nil
}

// DocumentFromAST converts the result of ParseAST back into a Document.
func DocumentFromAST(node ast.SchemaNode) (Document, error) {
	records, err := parser.Records(node)
	if err != nil {
		return nil, err
	}
	return documentOf(records), nil
}

// Validate reports whether input is valid CSV under the default options.
//
// It uses the zero-AST byte scanner and returns the same errors as Parse.
//
//	if err := csv.Validate(input); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string) error {
	if _, err := fastparser.Parse([]byte(input)); err != nil {
		return newParseError(input, err)
	}
	return nil
}

func parseWith(g *grammar.Grammar, input string) (Document, error) {
	records, err := g.Parse(input)
	if err != nil {
		return nil, newParseError(input, err)
	}
	return documentOf(records), nil
}
