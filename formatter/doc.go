// Package formatter renders log entries into the exact byte line handed
// to every sink.
//
// A line has the layout
//
//	<color><elapsed ms, width 6> [<code>] [<tag>] <message><reset><terminator>
//
// LineFormatter builds it with Append-style functions (strconv.AppendUint)
// into a pooled bytes.Buffer so that the hot path does not allocate. The
// buffer content is reset before every use. Buffers larger than 64 KiB
// are not returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
