package fastparser

import (
	"sync"
	"unsafe"
)

// fieldPool is a sync.Pool for []string slices used while assembling records.
var fieldPool = sync.Pool{
	New: func() interface{} {
		// Pre-allocate with capacity for typical CSV records (8 fields)
		s := make([]string, 0, 8)
		return &s
	},
}

// bufferPool is a sync.Pool for []byte buffers used in quoted field parsing.
// These buffers accumulate data when processing escaped quotes.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64)
		return &b
	},
}

// getFieldSlice gets an empty []string slice from the pool.
func getFieldSlice() []string {
	p := fieldPool.Get().(*[]string)
	return (*p)[:0]
}

// putFieldSlice returns a []string slice to the pool.
func putFieldSlice(fields []string) {
	// Avoid keeping huge slices alive
	const maxCapacity = 1024
	if cap(fields) > maxCapacity {
		return
	}
	clear(fields[:cap(fields)])
	fields = fields[:0]
	fieldPool.Put(&fields)
}

// getBuffer gets an empty []byte buffer from the pool.
func getBuffer() []byte {
	p := bufferPool.Get().(*[]byte)
	return (*p)[:0]
}

// putBuffer returns a []byte buffer to the pool.
func putBuffer(buf []byte) {
	const maxCapacity = 4096
	if cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}

// unsafeString converts a []byte to a string without allocation.
//
// The string shares the underlying array, so the bytes MUST NOT be modified
// afterwards. The parsers only call it on subslices of the input.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
