package fastparser

import (
	"strings"
	"testing"
)

// Benchmark data sets
var (
	// Small CSV: 3 rows x 3 columns of simple unquoted data
	smallCSV = []byte("a,b,c\nd,e,f\ng,h,i")

	// Medium CSV: 100 rows x 10 columns of unquoted data
	mediumCSV = generateCSV(100, 10, false)

	// Large CSV: 1000 rows x 10 columns of unquoted data
	largeCSV = generateCSV(1000, 10, false)

	// Quoted CSV: 100 rows x 10 columns with quoted fields
	quotedCSV = generateCSV(100, 10, true)

	// Mixed CSV: 100 rows x 10 columns with mix of quoted and unquoted
	mixedCSV = generateMixedCSV(100, 10)

	// Escaped CSV: quoted fields with doubled quotes
	escapedCSV = []byte(strings.Repeat(`"say ""hi""","plain",x`+"\n", 100))

	// Product CSV: the product line used by the benchmark driver
	productCSV = []byte(strings.Repeat(`123,2.99, AMO024, Title,"Description, more info",,123987564`+"\n", 1000))
)

var benchmarkInputs = []struct {
	name string
	data []byte
}{
	{"Small", smallCSV},
	{"Medium", mediumCSV},
	{"Large", largeCSV},
	{"Quoted", quotedCSV},
	{"Mixed", mixedCSV},
	{"Escaped", escapedCSV},
	{"Product", productCSV},
}

// generateCSV creates a CSV with specified dimensions
func generateCSV(rows, cols int, quoted bool) []byte {
	var data []byte
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				data = append(data, ',')
			}
			if quoted {
				data = append(data, '"')
			}
			data = append(data, "field"...)
			if quoted {
				data = append(data, '"')
			}
		}
		data = append(data, '\n')
	}
	return data
}

// generateMixedCSV creates CSV with alternating quoted/unquoted fields
func generateMixedCSV(rows, cols int) []byte {
	var data []byte
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				data = append(data, ',')
			}
			if c%2 == 0 {
				data = append(data, `"quoted field"`...)
			} else {
				data = append(data, "unquoted"...)
			}
		}
		data = append(data, '\n')
	}
	return data
}

func BenchmarkParse(b *testing.B) {
	for _, in := range benchmarkInputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				if _, err := Parse(in.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseDFA(b *testing.B) {
	for _, in := range benchmarkInputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				if _, err := ParseDFA(in.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseWith_CRLF(b *testing.B) {
	data := []byte(strings.ReplaceAll(string(mediumCSV), "\n", "\r\n"))
	lineBreak := []byte("\r\n")
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := ParseWith(data, ',', lineBreak); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFieldPool benchmarks field pool get/put
func BenchmarkFieldPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fields := getFieldSlice()
		fields = append(fields, "a", "b", "c")
		putFieldSlice(fields)
	}
}

// BenchmarkUnsafeString benchmarks zero-copy string conversion
func BenchmarkUnsafeString(b *testing.B) {
	data := []byte("hello world")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = unsafeString(data)
	}
}
