// Package sink provides ready-made output destinations for a Logger.
//
// A sink is any io.Writer. The Logger never owns a sink: it never opens,
// closes or frees one, so the lifetime of every sink stays with the
// caller. The types here cover the usual embedded destinations:
//
//   - Stdout and Stderr return ANSI-capable console writers (colors are
//     translated on Windows consoles).
//   - Memory collects lines in memory, the equivalent of a string
//     stream on a device.
//   - File appends to a file on an afero filesystem.
//   - Locked serializes writes to a sink shared with other writers.
//   - ColorStripper removes ANSI color sequences before writing, for
//     destinations that cannot render them.
package sink
