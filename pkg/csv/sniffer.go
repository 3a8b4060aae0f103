package csv

import (
	"strings"
)

// sniffDelimiters are the separators Sniff chooses between, in tie-break order.
var sniffDelimiters = []rune{',', '\t', ';', '|'}

// Sniff guesses the Options that parse sample. It picks the line break from
// the first line ending ("\r\n" or "\n") and the separator among comma, tab,
// semicolon and pipe, preferring one that splits every line into the same
// number of fields. For best results, provide at least 2-3 lines of data.
//
// Example:
//
//	opts := csv.Sniff("a;b\r\nc;d\r\n")
//	doc, err := csv.ParseWithOptions(input, opts)
func Sniff(sample string) Options {
	opts := DefaultOptions()
	if sample == "" {
		return opts
	}

	if i := strings.IndexByte(sample, '\n'); i > 0 && sample[i-1] == '\r' {
		opts.LineBreak = "\r\n"
	}

	lines := strings.Split(sample, opts.LineBreak)
	bestScore := 0
	for _, delim := range sniffDelimiters {
		if score := delimiterScore(lines, delim); score > bestScore {
			opts.Comma = delim
			bestScore = score
		}
	}
	return opts
}

// delimiterScore rates delim by its count on the first line, with a bonus
// when every non-empty line has the same count.
func delimiterScore(lines []string, delim rune) int {
	first := -1
	consistent := true
	for _, line := range lines {
		if line == "" {
			continue
		}
		count := countDelimiter(line, delim)
		if first < 0 {
			first = count
		} else if count != first {
			consistent = false
		}
	}
	if first <= 0 {
		return 0
	}
	if consistent {
		return first * 10
	}
	return first
}

// countDelimiter counts occurrences of a delimiter, ignoring quoted sections.
func countDelimiter(line string, delim rune) int {
	count := 0
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
		} else if ch == delim && !inQuotes {
			count++
		}
	}

	return count
}
