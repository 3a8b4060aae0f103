package combinator

import "strings"

// Or tries each alternative in order and returns the first match.
// Failed alternatives are discarded whether or not they consumed input.
func Or[T any](alternatives ...Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		var failed *Failure
		for _, p := range alternatives {
			r := p(in)
			if r.Ok() {
				return r
			}
			if failed == nil {
				failed = r.Failure
			} else {
				failed = merge(failed, r.Failure)
			}
		}
		if failed == nil {
			return failure[T](in)
		}
		return failedAt[T](in, failed)
	}
}

// XOr tries first and falls back to second only when first failed without
// consuming input. Once first has consumed input it owns the position.
func XOr[T any](first, second Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := first(in)
		if r.Ok() || r.Failure.consumed(in.offset) {
			return r
		}
		r2 := second(in)
		if r2.Ok() {
			return r2
		}
		return failedAt[T](in, merge(r.Failure, r2.Failure))
	}
}

// Many applies p zero or more times. The repetition stops at the first
// attempt that fails or does not advance; that attempt is rewound.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		var values []T
		cur := in
		for {
			r := p(cur)
			if !r.Ok() || r.Remainder.offset == cur.offset {
				break
			}
			values = append(values, r.Value)
			cur = r.Remainder
		}
		return success(values, cur)
	}
}

// XMany is Many, except that an attempt which fails after consuming input
// fails the whole repetition.
func XMany[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		var values []T
		cur := in
		for {
			r := p(cur)
			if !r.Ok() {
				if r.Failure.consumed(cur.offset) {
					return propagate[[]T](r)
				}
				break
			}
			if r.Remainder.offset == cur.offset {
				break
			}
			values = append(values, r.Value)
			cur = r.Remainder
		}
		return success(values, cur)
	}
}

// Right runs p then q and keeps the value of q.
func Right[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if !r.Ok() {
			return propagate[U](r)
		}
		return q(r.Remainder)
	}
}

// Left runs p then q and keeps the value of p.
func Left[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		r2 := q(r.Remainder)
		if !r2.Ok() {
			return propagate[T](r2)
		}
		return success(r.Value, r2.Remainder)
	}
}

// Between runs open, p and closing in sequence and keeps the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Left(Right(open, p), closing)
}

// Cons runs head then tail and prepends the head value to the tail values.
func Cons[T any](head Parser[T], tail Parser[[]T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		r := head(in)
		if !r.Ok() {
			return propagate[[]T](r)
		}
		rest := tail(r.Remainder)
		if !rest.Ok() {
			return rest
		}
		values := make([]T, 0, len(rest.Value)+1)
		values = append(values, r.Value)
		return success(append(values, rest.Value...), rest.Remainder)
	}
}

// Map transforms the value of a successful match.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if !r.Ok() {
			return propagate[U](r)
		}
		return success(f(r.Value), r.Remainder)
	}
}

// Text joins a sequence of string pieces.
func Text(p Parser[[]string]) Parser[string] {
	return Map(p, func(pieces []string) string {
		return strings.Join(pieces, "")
	})
}

// Recognize returns the source text consumed by p instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) Result[string] {
		r := p(in)
		if !r.Ok() {
			return propagate[string](r)
		}
		return success(in.source[in.offset:r.Remainder.offset], r.Remainder)
	}
}

func failedAt[T any](in Input, f *Failure) Result[T] {
	return Result[T]{
		Remainder: Input{source: in.source, offset: f.Offset},
		Failure:   f,
	}
}
