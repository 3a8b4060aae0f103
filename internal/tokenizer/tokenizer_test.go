package tokenizer

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

type expectedToken struct {
	kind  string
	value string
}

func assertTokens(t *testing.T, tok tokenizer.Tokenizer, expected []expectedToken) {
	t.Helper()
	for i, exp := range expected {
		token, ok := tok.NextToken()
		if !ok {
			t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
		}
		if token.Kind() != exp.kind {
			t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
		}
		if token.ValueString() != exp.value {
			t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
		}
	}

	// Verify no extra tokens
	if token, ok := tok.NextToken(); ok {
		t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
	}
}

// TestNewTokenizer_BasicTokens tests tokenization with the default options.
func TestNewTokenizer_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{
			name:     "single field",
			input:    "abc",
			expected: []expectedToken{{TokenContent, "abc"}},
		},
		{
			name:  "row with line break",
			input: "a,b\n",
			expected: []expectedToken{
				{TokenContent, "a"},
				{TokenComma, ","},
				{TokenContent, "b"},
				{TokenLineBreak, "\n"},
			},
		},
		{
			name:  "quoted field",
			input: `"x,y"`,
			expected: []expectedToken{
				{TokenDQuote, `"`},
				{TokenContent, "x"},
				{TokenComma, ","},
				{TokenContent, "y"},
				{TokenDQuote, `"`},
			},
		},
		{
			name:  "carriage return is content",
			input: "a\rb\n",
			expected: []expectedToken{
				{TokenContent, "a\rb"},
				{TokenLineBreak, "\n"},
			},
		},
		{
			name:  "leading spaces are content",
			input: " a, b",
			expected: []expectedToken{
				{TokenContent, " a"},
				{TokenComma, ","},
				{TokenContent, " b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer()
			tok.Initialize(tt.input)
			assertTokens(t, tok, tt.expected)
		})
	}
}

// TestNewTokenizerWithOptions_CRLF tests a multi-character line break.
func TestNewTokenizerWithOptions_CRLF(t *testing.T) {
	tok := NewTokenizerWithOptions(Options{Comma: ',', LineBreak: "\r\n"})
	tok.Initialize("a\rb,c\r\nd\n")

	assertTokens(t, tok, []expectedToken{
		{TokenContent, "a"},
		{TokenContent, "\r"},
		{TokenContent, "b"},
		{TokenComma, ","},
		{TokenContent, "c"},
		{TokenLineBreak, "\r\n"},
		{TokenContent, "d\n"},
	})
}

// TestNewTokenizerWithOptions_Delimiter tests a custom delimiter.
func TestNewTokenizerWithOptions_Delimiter(t *testing.T) {
	tok := NewTokenizerWithOptions(Options{Comma: ';', LineBreak: "\n"})
	tok.Initialize("a,b;c")

	assertTokens(t, tok, []expectedToken{
		{TokenContent, "a,b"},
		{TokenComma, ";"},
		{TokenContent, "c"},
	})
}

// TestTokenizer_LargeCSV tests tokenizing input that crosses stream buffer boundaries.
func TestTokenizer_LargeCSV(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(`"field1","field2","field3"`)
		sb.WriteString("\n")
	}

	stream := tokenizer.NewStreamFromReader(strings.NewReader(sb.String()))
	tok := NewTokenizerWithStreamAndOptions(stream, DefaultOptions())

	tokenCount := 0
	for {
		if _, ok := tok.NextToken(); !ok {
			break
		}
		tokenCount++
	}

	// " field1 " , " field2 " , " field3 " \n = 12 tokens per row
	if want := 100 * 12; tokenCount != want {
		t.Errorf("expected %d tokens, got %d", want, tokenCount)
	}
}
