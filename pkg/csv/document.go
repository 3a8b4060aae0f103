package csv

// Record is one line's worth of fields. A parsed Record is never empty.
type Record []string

// Document is the ordered list of records produced by one parse call.
type Document []Record

// documentOf wraps parser output without copying the fields.
func documentOf(records [][]string) Document {
	doc := make(Document, len(records))
	for i, r := range records {
		doc[i] = r
	}
	return doc
}

// Len returns the number of records.
func (d Document) Len() int {
	return len(d)
}

// Records returns the document as plain string slices.
func (d Document) Records() [][]string {
	records := make([][]string, len(d))
	for i, r := range d {
		records[i] = r
	}
	return records
}

// Equal reports whether both documents hold the same records and fields.
// A nil document equals an empty one.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether both records hold the same fields.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}
