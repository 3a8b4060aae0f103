// Package strategy holds the CSV parsing approaches compared by the benchmark
// harness. Each one turns the same input into records; they differ in how
// much of the CSV grammar they honor and in what they cost.
//
// Strategies are stateless values and safe for concurrent use. Every Parse
// call builds its own reader, lexer or cursor.
package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by Lookup for a name that is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is one parsing approach under comparison.
type Strategy interface {
	// Name identifies the strategy on the command line and in reports.
	Name() string
	// Parse splits input into records of fields.
	Parse(input string) ([][]string, error)
}

// Func adapts a plain function to the Strategy interface.
type Func struct {
	name  string
	parse func(string) ([][]string, error)
}

// NewFunc returns a Strategy named name that delegates to parse.
func NewFunc(name string, parse func(string) ([][]string, error)) Func {
	return Func{name: name, parse: parse}
}

// Name returns the strategy name.
func (f Func) Name() string { return f.name }

// Parse calls the wrapped function.
func (f Func) Parse(input string) ([][]string, error) { return f.parse(input) }

// registry lists the strategies in report order. The first four are the
// approaches of the original comparison.
var registry = []Strategy{
	Regexp(),
	Split(),
	Grammar(),
	EncodingCSV(),
	Tokens(),
	Participle(),
	Fast(),
	DFA(),
}

// All returns every registered strategy in report order.
func All() []Strategy {
	out := make([]Strategy, len(registry))
	copy(out, registry)
	return out
}

// Names returns the names of all registered strategies in report order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name()
	}
	return names
}

// Lookup finds a strategy by name.
func Lookup(name string) (Strategy, error) {
	for _, s := range registry {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

// Select resolves names in order. An empty list selects every strategy.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// lines splits input on "\n" for the line-oriented strategies. A final line
// break does not start another line and empty input has no lines.
func lines(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(input, "\n"), "\n")
}
