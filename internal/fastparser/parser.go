// Package fastparser implements the CSV grammar directly over bytes, without
// combinators, tokens or AST construction.
//
// It accepts exactly the language of internal/grammar:
//   - Fields are separated by the delimiter
//   - Records are separated by the line break, which may span several bytes
//   - Only a quote at the start of a field opens a quoted field
//   - Quoted fields may contain delimiters, line breaks and escaped quotes ("")
//   - An empty line is a record with one empty field
//   - Empty input has no records and a final line break adds none
//
// Unquoted fields are returned as zero-copy views of the input.
package fastparser

import (
	"bytes"
	"strconv"

	"github.com/shapestone/csvgrammar/internal/grammar"
)

// Parse parses CSV data with "," and "\n".
func Parse(data []byte) ([][]string, error) {
	return ParseWith(data, ',', []byte(grammar.DefaultLineBreak))
}

// ParseWith parses CSV data with an ASCII delimiter and a custom line break.
//
// Returns a slice of records, where each record is a slice of field values.
// On failure it returns a *grammar.Error.
func ParseWith(data []byte, delim byte, lineBreak []byte) ([][]string, error) {
	if len(data) == 0 {
		return [][]string{}, nil
	}

	p := &parser{
		data:      data,
		length:    len(data),
		delim:     delim,
		lineBreak: lineBreak,
	}
	return p.parse()
}

// parser implements a high-performance CSV parser.
type parser struct {
	data      []byte
	pos       int
	length    int
	delim     byte
	lineBreak []byte
}

// parse parses the entire CSV input using a single backing array for all fields.
func (p *parser) parse() ([][]string, error) {
	// Assume average field size of 8 bytes + 1 delimiter = 9 bytes per field
	estimatedFields := p.length / 9
	if estimatedFields < 64 {
		estimatedFields = 64
	}

	backingArray := make([]string, 0, estimatedFields)
	records := make([][]string, 0, estimatedFields/8)

	for p.pos < p.length {
		recordStart := len(backingArray)

		for {
			field, err := p.parseField()
			if err != nil {
				return nil, err
			}
			backingArray = append(backingArray, field)

			if p.pos >= p.length {
				break
			}
			if p.data[p.pos] == p.delim {
				p.pos++
				continue
			}
			if p.atLineBreak() {
				p.pos += len(p.lineBreak)
				break
			}
			return nil, &grammar.Error{
				Offset:   p.pos,
				Expected: strconv.QuoteRune(rune(p.delim)) + " or line break or end of input",
				Err:      grammar.ErrTrailingInput,
			}
		}

		recordEnd := len(backingArray)
		records = append(records, backingArray[recordStart:recordEnd:recordEnd])
	}

	return records, nil
}

// parseField parses a single CSV field.
func (p *parser) parseField() (string, error) {
	if p.pos < p.length && p.data[p.pos] == '"' {
		return p.parseQuotedField()
	}
	return p.parseUnquotedField(), nil
}

// parseQuotedField parses a quoted CSV field.
func (p *parser) parseQuotedField() (string, error) {
	open := p.pos
	p.pos++ // Skip opening quote
	start := p.pos

	// Scan for closing quote, checking for escapes
	for i := p.pos; i < p.length; i++ {
		if p.data[i] == '"' {
			if i+1 < p.length && p.data[i+1] == '"' {
				// Escaped quote - need slow path
				return p.parseQuotedFieldSlow(open, start)
			}
			// Simple quoted field - zero copy
			p.pos = i + 1
			return unsafeString(p.data[start:i]), nil
		}
	}

	return "", unterminated(open)
}

// parseQuotedFieldSlow handles quoted fields with escaped quotes.
func (p *parser) parseQuotedFieldSlow(open, start int) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	for p.pos < p.length {
		if p.data[p.pos] != '"' {
			p.pos++
			continue
		}

		buf = append(buf, p.data[start:p.pos]...)
		p.pos++

		if p.pos < p.length && p.data[p.pos] == '"' {
			buf = append(buf, '"')
			p.pos++
			start = p.pos
			continue
		}

		return string(buf), nil
	}

	return "", unterminated(open)
}

// parseUnquotedField parses an unquoted CSV field using zero-copy.
// Quotes are ordinary content here.
func (p *parser) parseUnquotedField() string {
	start := p.pos
	for p.pos < p.length && p.data[p.pos] != p.delim && !p.atLineBreak() {
		p.pos++
	}
	return unsafeString(p.data[start:p.pos])
}

// atLineBreak checks if the whole line break starts at the current position.
func (p *parser) atLineBreak() bool {
	if p.data[p.pos] != p.lineBreak[0] {
		return false
	}
	return bytes.HasPrefix(p.data[p.pos:], p.lineBreak)
}

func unterminated(open int) error {
	return &grammar.Error{
		Offset:   open,
		Expected: `closing '"'`,
		Err:      grammar.ErrUnterminatedQuotedField,
	}
}
