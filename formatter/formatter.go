package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/taglog/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// LineEnding selects the terminator appended to every line
type LineEnding uint8

const (
	// LF terminates lines with "\n" (default)
	LF LineEnding = iota
	// CRLF terminates lines with "\r\n", as most serial terminals expect
	CRLF
)

// String returns the terminator bytes as a string
func (e LineEnding) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Config holds common formatter configuration
type Config struct {
	// LineEnding selects LF or CRLF
	LineEnding LineEnding
	// DisableColor omits the ANSI color prefix and reset suffix
	DisableColor bool
}

// bufferSize is the initial capacity of pooled buffers
const bufferSize = 256

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(bufferSize)
		return b
	},
}

// GetBuffer returns an empty buffer from the pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
