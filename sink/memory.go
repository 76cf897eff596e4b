package sink

import (
	"bytes"
	"strings"
)

// Memory is an in-memory sink that records every write. It is the Go
// counterpart of a string stream used as a capture target on devices.
type Memory struct {
	buf    bytes.Buffer
	writes int
}

// NewMemory creates an empty in-memory sink
func NewMemory() *Memory {
	return &Memory{}
}

// Write appends p to the collected output
func (m *Memory) Write(p []byte) (int, error) {
	m.writes++
	return m.buf.Write(p)
}

// String returns everything written so far
func (m *Memory) String() string {
	return m.buf.String()
}

// Bytes returns everything written so far. The slice is only valid until
// the next Write or Reset.
func (m *Memory) Bytes() []byte {
	return m.buf.Bytes()
}

// Writes returns the number of Write calls received
func (m *Memory) Writes() int {
	return m.writes
}

// Lines splits the collected output into lines without terminators.
// Both LF and CRLF terminators are recognized.
func (m *Memory) Lines() []string {
	s := m.buf.String()
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Reset discards the collected output
func (m *Memory) Reset() {
	m.buf.Reset()
	m.writes = 0
}
