package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Comma is the field delimiter. Default: ','
	Comma rune
	// LineBreak is the record separator. Default: "\n"
	LineBreak string
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Comma:     ',',
		LineBreak: "\n",
	}
}

// NewTokenizer creates a tokenizer with the default options.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Matchers are tried in order:
//  1. the whole line-break sequence
//  2. the delimiter
//  3. the double quote
//  4. a run of content, stopping at the delimiter, a quote, or the first
//     character of the line break
//  5. a lone first character of a multi-character line break, as content
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	breakStart, _ := utf8.DecodeRuneInString(opts.LineBreak)

	matchers := []tokenizer.Matcher{
		tokenizer.StringMatcherFunc(TokenLineBreak, opts.LineBreak),
		tokenizer.StringMatcherFunc(TokenComma, string(opts.Comma)),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),
		ContentMatcher(opts.Comma, breakStart),
	}
	if utf8.RuneCountInString(opts.LineBreak) > 1 {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenContent, string(breakStart)))
	}
	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// NewTokenizerWithStreamAndOptions creates a tokenizer from a stream with custom options.
func NewTokenizerWithStreamAndOptions(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// ContentMatcher matches runs of characters that are not the delimiter,
// a quote, or the first character of the line break.
//
// Grammar:
//
//	Content = Character+ ;
//	Character = <any character except delimiter, quote, line break start> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func ContentMatcher(delim, breakStart rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if delim < utf8.RuneSelf && breakStart < utf8.RuneSelf {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return contentMatcherByte(byteStream, byte(delim), byte(breakStart))
			}
		}
		return contentMatcherRune(stream, delim, breakStart)
	}
}

// contentMatcherByte uses ByteStream for optimal performance.
func contentMatcherByte(stream tokenizer.ByteStream, delim, breakStart byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == delim || b == '"' || b == breakStart {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenContent, []rune(string(value)))
}

// contentMatcherRune is the fallback rune-based implementation.
func contentMatcherRune(stream tokenizer.Stream, delim, breakStart rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == delim || r == '"' || r == breakStart {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenContent, value)
}
