package csv

import (
	"errors"
	"strings"
	"testing"
)

// TestRender tests the basic Render function
func TestRender(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{name: "empty", doc: Document{}, want: ""},
		{name: "simple", doc: Document{{"name", "age"}, {"Alice", "30"}}, want: "name,age\nAlice,30\n"},
		{name: "empty fields", doc: Document{{"a", "", "c"}, {"", "", ""}}, want: "a,,c\n,,\n"},
		{name: "empty record", doc: Document{{"a"}, {""}}, want: "a\n\n"},
		{name: "separator", doc: Document{{"b, c"}}, want: "\"b, c\"\n"},
		{name: "quotes", doc: Document{{`say "hi"`}}, want: "\"say \"\"hi\"\"\"\n"},
		{name: "line break", doc: Document{{"a\nb"}}, want: "\"a\nb\"\n"},
		{name: "carriage return", doc: Document{{"a\rb"}}, want: "\"a\rb\"\n"},
		{name: "whitespace kept", doc: Document{{" a ", "\tb"}}, want: " a ,\tb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Render(tt.doc)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderWithOptions(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		opts WriterOptions
		want string
	}{
		{
			name: "semicolon leaves commas alone",
			doc:  Document{{"a,b", "c;d"}},
			opts: WriterOptions{Comma: ';', LineBreak: "\n"},
			want: "a,b;\"c;d\"\n",
		},
		{
			name: "CRLF",
			doc:  Document{{"a", "b"}, {"c"}},
			opts: WriterOptions{Comma: ',', LineBreak: "\r\n"},
			want: "a,b\r\nc\r\n",
		},
		{
			name: "custom line break characters are quoted",
			doc:  Document{{"a|b"}},
			opts: WriterOptions{Comma: ',', LineBreak: "||"},
			want: "\"a|b\"||",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderWithOptions(tt.doc, tt.opts)
			if err != nil {
				t.Fatalf("RenderWithOptions() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("RenderWithOptions() = %q, want %q", got, tt.want)
			}

			back, err := ParseWithOptions(string(got), Options(tt.opts))
			if err != nil {
				t.Fatalf("ParseWithOptions() error = %v", err)
			}
			if !back.Equal(tt.doc) {
				t.Errorf("round trip = %q, want %q", back, tt.doc)
			}
		})
	}
}

func TestRenderWithOptions_Invalid(t *testing.T) {
	_, err := RenderWithOptions(Document{{"a"}}, WriterOptions{Comma: '"', LineBreak: "\n"})
	var oerr *OptionsError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected *OptionsError, got %v", err)
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		value     string
		delim     rune
		lineBreak string
		want      bool
	}{
		{"plain", ',', "\n", false},
		{"", ',', "\n", false},
		{"a,b", ',', "\n", true},
		{"a;b", ',', "\n", false},
		{"a;b", ';', "\n", true},
		{`a"b`, ',', "\n", true},
		{"a\rb", ',', "\r\n", true},
		{"a#b", ',', "#", true},
	}

	for _, tt := range tests {
		if got := needsQuoting(tt.value, tt.delim, tt.lineBreak); got != tt.want {
			t.Errorf("needsQuoting(%q, %q, %q) = %v, want %v", tt.value, tt.delim, tt.lineBreak, got, tt.want)
		}
	}
}

// BenchmarkRender benchmarks rendering a product document
func BenchmarkRender(b *testing.B) {
	doc, err := Parse(strings.Repeat(`123,2.99, AMO024, Title,"Description, more info",,123987564`+"\n", 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(doc)
	}
}
