package grammar

import (
	"errors"
	"testing"
)

// FuzzParse checks that the grammar never panics and that every failure is
// classified with an offset inside the input.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./internal/grammar
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c\n",
		"a\n\nb",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\nline\"",
		"\"open",
		"\"closed\"trailing",
		"\r\n",
		"ab\"c",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		records, err := Default().Parse(input)
		if err != nil {
			var gerr *Error
			if !errors.As(err, &gerr) {
				t.Fatalf("unexpected error type %T", err)
			}
			if gerr.Offset < 0 || gerr.Offset > len(input) {
				t.Fatalf("offset %d outside input of length %d", gerr.Offset, len(input))
			}
			return
		}
		for _, record := range records {
			if len(record) == 0 {
				t.Fatalf("empty record in %q", records)
			}
		}
	})
}
