package strategy

import (
	encodingcsv "encoding/csv"
	"regexp"
	"strings"
)

// fieldPattern captures the next value of a line: either a quoted string
// (group 1, with doubled quotes) or a run of non-commas (group 2). Leading
// whitespace and whitespace after a closing quote are dropped.
var fieldPattern = regexp.MustCompile(`\s*(?:"([^"]*(?:""[^"]*)*)"\s*|([^,]*))(?:,|$)`)

// Regexp matches fieldPattern repeatedly over each line. It cannot see
// quoted line breaks, trims leading whitespace from every field and loses
// an empty last field, since FindAll drops an empty match that abuts the
// previous one.
func Regexp() Strategy {
	return NewFunc("regexp", func(input string) ([][]string, error) {
		var records [][]string
		for _, line := range lines(input) {
			matches := fieldPattern.FindAllStringSubmatchIndex(line, -1)
			record := make([]string, 0, len(matches))
			for _, m := range matches {
				if m[2] >= 0 {
					record = append(record, strings.ReplaceAll(line[m[2]:m[3]], `""`, `"`))
					continue
				}
				record = append(record, line[m[4]:m[5]])
			}
			records = append(records, record)
		}
		return records, nil
	})
}

// Split cuts each line at every comma, quoted or not.
func Split() Strategy {
	return NewFunc("split", func(input string) ([][]string, error) {
		var records [][]string
		for _, line := range lines(input) {
			records = append(records, strings.Split(line, ","))
		}
		return records, nil
	})
}

// EncodingCSV reads with the standard library's RFC 4180 reader, allowing a
// variable number of fields per record. Unlike the grammar it skips empty
// lines, folds "\r\n" into "\n" and rejects quotes inside unquoted fields.
func EncodingCSV() Strategy {
	return NewFunc("encoding-csv", func(input string) ([][]string, error) {
		r := encodingcsv.NewReader(strings.NewReader(input))
		r.FieldsPerRecord = -1
		return r.ReadAll()
	})
}
