package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTokenizer checks that tokenization is lossless: concatenating the
// token values reproduces the input, for both line-break configurations.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		",",
		"\n",
		"\r\n",
		"\r",
		"\"\"",
		"a,b,c",
		"\"with\"\"quote\"",
		"a\r\nb\rc\n",
		"héllo,wörld",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	configs := []Options{DefaultOptions(), {Comma: ',', LineBreak: "\r\n"}}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("tokens carry runes")
		}
		for _, opts := range configs {
			tok := NewTokenizerWithOptions(opts)
			tok.Initialize(input)

			var sb strings.Builder
			for {
				token, ok := tok.NextToken()
				if !ok {
					break
				}
				sb.WriteString(token.ValueString())
			}
			if sb.String() != input {
				t.Fatalf("line break %q: tokens rebuild %q from %q", opts.LineBreak, sb.String(), input)
			}
		}
	})
}
