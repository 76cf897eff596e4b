package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/taglog/core"
)

// elapsedWidth is the minimum width of the right-aligned elapsed field
const elapsedWidth = 6

// LineFormatter formats log entries as colored, tagged text lines
type LineFormatter struct {
	Config
	terminator string
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	return &LineFormatter{
		Config:     cfg,
		terminator: cfg.LineEnding.String(),
	}
}

// Format formats an entry and returns a copy of the line
func (f *LineFormatter) Format(entry *core.Entry) []byte {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatEntry writes the formatted entry into the given buffer
func (f *LineFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if !f.DisableColor {
		buf.WriteString(entry.Level.Color())
	}

	appendElapsed(buf, entry.Elapsed)

	buf.WriteString(" [")
	buf.WriteByte(entry.Level.Code())
	buf.WriteString("] [")
	buf.WriteString(entry.Tag)
	buf.WriteString("] ")

	buf.WriteString(entry.Message)

	if !f.DisableColor {
		buf.WriteString(core.ColorReset)
	}
	buf.WriteString(f.terminator)
}

// appendElapsed writes ms right-aligned in a field of at least
// elapsedWidth characters, like printf("%6lu").
func appendElapsed(buf *bytes.Buffer, ms uint64) {
	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], ms, 10)
	for i := len(digits); i < elapsedWidth; i++ {
		buf.WriteByte(' ')
	}
	buf.Write(digits)
}
