package combinator

import (
	"fmt"
	"strings"
)

// Failure describes why a parser did not match.
type Failure struct {
	// Start is the offset where the reporting rule began.
	Start int
	// Offset is the offset where the parser gave up.
	Offset int
	// Expected lists the constructs that would have allowed progress.
	Expected []string
	// Err optionally classifies the failure. See Classify.
	Err error
}

// Error formats the failure as "expected X at offset N".
func (f *Failure) Error() string {
	return fmt.Sprintf("expected %s at offset %d", f.ExpectedString(), f.Offset)
}

// Unwrap returns the classification error, if any.
func (f *Failure) Unwrap() error {
	return f.Err
}

// ExpectedString joins the expected constructs with "or".
func (f *Failure) ExpectedString() string {
	switch len(f.Expected) {
	case 0:
		return "valid input"
	case 1:
		return f.Expected[0]
	}
	return strings.Join(f.Expected, " or ")
}

// consumed reports whether the failure happened past offset.
func (f *Failure) consumed(offset int) bool {
	return f.Offset > offset
}

// Result is the outcome of applying a Parser to an Input.
// On success Remainder is the cursor after the match; on failure it is the
// cursor where the parser gave up and Failure is set.
type Result[T any] struct {
	Value     T
	Remainder Input
	Failure   *Failure
}

// Ok reports whether the parser matched.
func (r Result[T]) Ok() bool {
	return r.Failure == nil
}

// Parser consumes a prefix of an Input.
type Parser[T any] func(Input) Result[T]

// Parse applies p to the start of source.
func Parse[T any](p Parser[T], source string) Result[T] {
	return p(NewInput(source))
}

func success[T any](value T, rest Input) Result[T] {
	return Result[T]{Value: value, Remainder: rest}
}

func failure[T any](at Input, expected ...string) Result[T] {
	return Result[T]{
		Remainder: at,
		Failure:   &Failure{Start: at.offset, Offset: at.offset, Expected: expected},
	}
}

// propagate re-types a failed result.
func propagate[T, U any](r Result[U]) Result[T] {
	return Result[T]{Remainder: r.Remainder, Failure: r.Failure}
}

// merge combines two failures, keeping the one that got further.
// Failures at the same offset pool their expectations.
func merge(a, b *Failure) *Failure {
	switch {
	case a.Offset > b.Offset:
		return a
	case b.Offset > a.Offset:
		return b
	}
	if a.Err != nil {
		return a
	}
	if b.Err != nil {
		return b
	}
	expected := make([]string, 0, len(a.Expected)+len(b.Expected))
	expected = append(expected, a.Expected...)
	for _, e := range b.Expected {
		if !contains(expected, e) {
			expected = append(expected, e)
		}
	}
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	return &Failure{Start: start, Offset: a.Offset, Expected: expected}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
