package sink

import (
	"bytes"
	"io"
	"regexp"
)

// ansiPattern matches SGR escape sequences such as "\x1b[31m"
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ColorStripper removes ANSI color sequences from every write before
// passing it on. Use it in front of files or serial links that show
// escape codes verbatim.
type ColorStripper struct {
	w io.Writer
}

// StripColor wraps w
func StripColor(w io.Writer) *ColorStripper {
	return &ColorStripper{w: w}
}

// Write forwards p without color sequences. It reports len(p) on
// success so callers see the whole line as consumed.
func (s *ColorStripper) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, 0x1b) < 0 {
		return s.w.Write(p)
	}
	if _, err := s.w.Write(ansiPattern.ReplaceAll(p, nil)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sync flushes the wrapped writer when it supports it
func (s *ColorStripper) Sync() error {
	if ws, ok := s.w.(interface{ Sync() error }); ok {
		return ws.Sync()
	}
	return nil
}
