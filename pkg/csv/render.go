package csv

import (
	"bytes"
	"strings"
)

// Render converts a Document back to CSV bytes using "," and "\n".
//
// Rendering handles:
//   - Quoting of fields containing the separator, a quote, '\r' or '\n'
//   - Escaping of quotes by doubling them
//   - Preservation of empty fields
//   - A line break after every record
//
// Parsing the output yields a Document equal to doc.
//
// Example:
//
//	doc, _ := csv.Parse("name,note\nAlice,\"hi, there\"")
//	out := csv.Render(doc)
//	// out: name,note\nAlice,"hi, there"\n
func Render(doc Document) []byte {
	out, _ := RenderWithOptions(doc, DefaultWriterOptions())
	return out
}

// RenderWithOptions converts a Document to CSV bytes with a custom separator
// and line break.
//
// Example:
//
//	opts := csv.DefaultWriterOptions()
//	opts.LineBreak = "\r\n"
//	out, err := csv.RenderWithOptions(doc, opts)
func RenderWithOptions(doc Document, opts WriterOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, record := range doc {
		for i, field := range record {
			if i > 0 {
				buf.WriteRune(opts.Comma)
			}
			writeField(&buf, field, opts.Comma, opts.LineBreak)
		}
		buf.WriteString(opts.LineBreak)
	}
	return buf.Bytes(), nil
}

// writeField writes a CSV field to the buffer with proper escaping.
func writeField(buf *bytes.Buffer, value string, delim rune, lineBreak string) {
	if !needsQuoting(value, delim, lineBreak) {
		buf.WriteString(value)
		return
	}

	buf.WriteByte('"')
	for {
		i := strings.IndexByte(value, '"')
		if i < 0 {
			break
		}
		buf.WriteString(value[:i+1])
		buf.WriteByte('"')
		value = value[i+1:]
	}
	buf.WriteString(value)
	buf.WriteByte('"')
}

// needsQuoting reports whether value must be quoted to survive re-parsing.
func needsQuoting(value string, delim rune, lineBreak string) bool {
	return strings.ContainsRune(value, delim) ||
		strings.ContainsAny(value, "\"\r\n") ||
		strings.ContainsAny(value, lineBreak)
}
