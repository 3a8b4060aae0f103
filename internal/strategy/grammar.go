package strategy

import (
	"github.com/shapestone/csvgrammar/internal/fastparser"
	"github.com/shapestone/csvgrammar/internal/parser"
	"github.com/shapestone/csvgrammar/pkg/csv"
)

// Grammar parses with the combinator grammar through the public API.
func Grammar() Strategy {
	return NewFunc("grammar", func(input string) ([][]string, error) {
		doc, err := csv.Parse(input)
		if err != nil {
			return nil, err
		}
		return doc.Records(), nil
	})
}

// Tokens parses with the shape-core tokenizer and the LL(1) parser, building
// the AST before flattening it.
func Tokens() Strategy {
	return NewFunc("tokens", func(input string) ([][]string, error) {
		node, err := parser.NewParser(input).Parse()
		if err != nil {
			return nil, err
		}
		return parser.Records(node)
	})
}

// Fast parses with the hand-written byte scanner.
func Fast() Strategy {
	return NewFunc("fast", func(input string) ([][]string, error) {
		return fastparser.Parse([]byte(input))
	})
}

// DFA parses with the table-driven state machine.
func DFA() Strategy {
	return NewFunc("dfa", func(input string) ([][]string, error) {
		return fastparser.ParseDFA([]byte(input))
	})
}
