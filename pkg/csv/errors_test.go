package csv

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Offset:   2,
		Line:     1,
		Column:   3,
		Expected: `closing '"'`,
		Err:      ErrUnterminatedQuotedField,
	}

	want := `csv: unterminated quoted field at offset 2 (line 1, column 3): expected closing '"'`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnterminatedQuotedField) {
		t.Error("expected errors.Is to match the error class")
	}
	if errors.Is(err, ErrTrailingInput) {
		t.Error("unexpected match with another class")
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := Parse("ok\n\"x\"y")
	want := `csv: trailing input at offset 6 (line 2, column 4): expected ',' or line break or end of input`
	if err == nil || err.Error() != want {
		t.Errorf("Parse() error = %v, want %q", err, want)
	}
}

func TestNewParseError_Passthrough(t *testing.T) {
	other := fmt.Errorf("read failed")
	if got := newParseError("x", other); got != other {
		t.Errorf("newParseError() = %v, want the original error", got)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		input      string
		offset     int
		line, col  int
	}{
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"a\nbc", 2, 2, 1},
		{"a\nbc", 3, 2, 2},
		{"a\n\n", 3, 3, 1},
		{"ab", 10, 1, 3},
	}

	for _, tt := range tests {
		line, col := position(tt.input, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("position(%q, %d) = %d:%d, want %d:%d", tt.input, tt.offset, line, col, tt.line, tt.col)
		}
	}
}
