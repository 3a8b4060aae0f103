package strategy

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// csvLexer tokenizes the grammar's terminals. Text may contain quotes but
// not start with one, so an opening quote is only ever a Quoted token.
var csvLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Quoted", Pattern: `"(?:[^"]|"")*"`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Text", Pattern: `[^,\n"][^,\n]*`},
})

type csvFile struct {
	Records []*csvRecord `@@*`
}

type csvRecord struct {
	Fields []*csvField `@@ ( "," @@ )* EOL`
}

type csvField struct {
	Value *string `( @Quoted | @Text )?`
}

var csvParser = participle.MustBuild[csvFile](
	participle.Lexer(csvLexer),
	participle.Map(unquote, "Quoted"),
)

// unquote strips the delimiters of a quoted token and collapses doubled quotes.
func unquote(token lexer.Token) (lexer.Token, error) {
	value := token.Value[1 : len(token.Value)-1]
	token.Value = strings.ReplaceAll(value, `""`, `"`)
	return token, nil
}

// Participle parses with a participle grammar generated from struct tags.
// Every record ends in EOL, so a missing final line break is supplied first.
func Participle() Strategy {
	return NewFunc("participle", func(input string) ([][]string, error) {
		if input != "" && !strings.HasSuffix(input, "\n") {
			input += "\n"
		}
		file, err := csvParser.ParseString("", input)
		if err != nil {
			return nil, fmt.Errorf("participle: %w", err)
		}

		records := make([][]string, len(file.Records))
		for i, r := range file.Records {
			record := make([]string, len(r.Fields))
			for j, f := range r.Fields {
				if f.Value != nil {
					record[j] = *f.Value
				}
			}
			records[i] = record
		}
		return records, nil
	})
}
