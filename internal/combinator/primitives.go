package combinator

import "strconv"

// Char matches the single rune c.
func Char(c rune) Parser[rune] {
	expected := strconv.QuoteRune(c)
	return func(in Input) Result[rune] {
		r, size := in.Current()
		if size == 0 || r != c {
			return failure[rune](in, expected)
		}
		return success(r, in.Advance(size))
	}
}

// AnyChar matches any single rune.
func AnyChar() Parser[rune] {
	return func(in Input) Result[rune] {
		r, size := in.Current()
		if size == 0 {
			return failure[rune](in, "any character")
		}
		return success(r, in.Advance(size))
	}
}

// String matches the literal s. The match is atomic: a partial match fails
// at the starting offset without consuming input.
func String(s string) Parser[string] {
	expected := strconv.Quote(s)
	return func(in Input) Result[string] {
		rest := in.Rest()
		if len(rest) < len(s) || rest[:len(s)] != s {
			return failure[string](in, expected)
		}
		return success(s, in.Advance(len(s)))
	}
}

// Return succeeds with v without consuming input.
func Return[T any](v T) Parser[T] {
	return func(in Input) Result[T] {
		return success(v, in)
	}
}

// End runs p and then requires the end of input.
func End[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		if !r.Remainder.AtEnd() {
			return failure[T](r.Remainder, "end of input")
		}
		return r
	}
}

// Except runs p unless excluded matches at the same position.
func Except[T, U any](p Parser[T], excluded Parser[U]) Parser[T] {
	return func(in Input) Result[T] {
		if excluded(in).Ok() {
			return failure[T](in)
		}
		return p(in)
	}
}

// Label replaces the expectations of a failure that did not consume input.
func Label[T any](p Parser[T], expected string) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Ok() || r.Failure.consumed(in.offset) {
			return r
		}
		f := *r.Failure
		f.Expected = []string{expected}
		r.Failure = &f
		return r
	}
}

// Classify tags a failure of p that consumed input with err, unless an
// inner rule already classified it. Start is set to the offset where p began.
func Classify[T any](p Parser[T], err error) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Ok() || r.Failure.Err != nil || !r.Failure.consumed(in.offset) {
			return r
		}
		f := *r.Failure
		f.Start = in.offset
		f.Err = err
		r.Failure = &f
		return r
	}
}
