// Package tokenizer provides CSV tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the CSV grammar's terminals.
//
// Note: The tokenizer emits simple character-level tokens. The parser is
// responsible for interpreting quotes and determining field boundaries.
const (
	// Structural tokens
	TokenComma     = "Comma"     // , (field separator)
	TokenDQuote    = "DQuote"    // " (quote delimiter)
	TokenLineBreak = "LineBreak" // configured record separator

	// Field content token
	TokenContent = "Content" // run of characters that are not structural
)
