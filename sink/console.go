package sink

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// console keeps the file behind a colorable writer reachable, because on
// Windows colorable hides it behind a writer without Fd.
type console struct {
	io.Writer
	file *os.File
}

// Fd returns the descriptor of the underlying file
func (c *console) Fd() uintptr {
	return c.file.Fd()
}

// Stdout returns a writer for standard output that understands ANSI
// color sequences on every platform.
func Stdout() io.Writer {
	return Console(os.Stdout)
}

// Stderr returns a writer for standard error that understands ANSI
// color sequences on every platform.
func Stderr() io.Writer {
	return Console(os.Stderr)
}

// Console wraps f so that ANSI color sequences work on every platform.
// The result still reports f's descriptor to IsTerminal.
func Console(f *os.File) io.Writer {
	return &console{Writer: colorable.NewColorable(f), file: f}
}

// IsTerminal reports whether w is a file descriptor attached to a
// terminal. Console writers are looked through to their file; other
// writers without a file descriptor are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
