package logger

import (
	"fmt"
	"io"
	"reflect"

	"go.uber.org/multierr"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
)

// Logger renders tagged lines and fans them out to registered sinks
type Logger struct {
	level     core.Level
	outputs   []io.Writer
	clock     core.Clock
	formatter formatter.Formatter
	stats     *Stats
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level     core.Level
	outputs   []io.Writer
	clock     core.Clock
	formatter formatter.Formatter
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.DebugLevel, // Default level
	}
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithOutputs registers sinks in the given order
func (b *Builder) WithOutputs(outputs ...io.Writer) *Builder {
	b.outputs = append(b.outputs, outputs...)
	return b
}

// WithClock sets the time source (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithFormatter sets the line formatter (default: LineFormatter with LF)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		level:     b.level,
		clock:     b.clock,
		formatter: b.formatter,
		stats:     NewStats(),
	}
	if l.clock == nil {
		l.clock = core.SystemClock()
	}
	if l.formatter == nil {
		l.formatter = formatter.NewLineFormatter(formatter.Config{})
	}
	for _, w := range b.outputs {
		l.AddOutput(w)
	}
	return l
}

// New creates a Logger with threshold Debug, the system clock, the
// default line formatter and no sinks
func New() *Logger {
	return NewBuilder().Build()
}

// SetLevel sets the threshold. Any value is stored as given; while it is
// outside [NoneLevel, DebugLevel] every call is suppressed.
func (l *Logger) SetLevel(level core.Level) {
	l.level = level
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// AddOutput registers w as a sink. Nil sinks are ignored. Registering the
// same sink twice delivers every line to it twice.
func (l *Logger) AddOutput(w io.Writer) {
	if isNil(w) {
		l.stats.IncrementRejected()
		return
	}
	l.outputs = append(l.outputs, w)
}

// RemoveOutput removes every registration of w. Removing a sink that is
// not registered is a no-op.
func (l *Logger) RemoveOutput(w io.Writer) {
	if isNil(w) {
		return
	}
	kept := make([]io.Writer, 0, len(l.outputs))
	for i, o := range l.outputs {
		if sameOutput(o, w) {
			// Clear the slot so a fan-out in progress skips it
			l.outputs[i] = nil
			continue
		}
		kept = append(kept, o)
	}
	l.outputs = kept
}

// Outputs returns the number of registered sinks
func (l *Logger) Outputs() int {
	return len(l.outputs)
}

// Enabled reports whether a call at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level.Valid() && l.level.Valid() && level <= l.level
}

// Log renders one line at level and writes it to every sink. The message
// is always fmt.Sprintf(format, args...), so "%%" yields "%" even without
// args. Use Print for text that must not be interpreted.
func (l *Logger) Log(level core.Level, tag, format string, args ...interface{}) {
	// Level check - exit early BEFORE any allocations
	if !l.Enabled(level) {
		l.stats.IncrementSuppressed()
		return
	}

	l.emit(level, tag, fmt.Sprintf(format, args...))
}

// Print logs msg verbatim at level, without any format processing. Use
// it for messages rendered elsewhere.
func (l *Logger) Print(level core.Level, tag, msg string) {
	if !l.Enabled(level) {
		l.stats.IncrementSuppressed()
		return
	}
	l.emit(level, tag, msg)
}

// emit formats the entry into a pooled buffer and fans it out
func (l *Logger) emit(level core.Level, tag, msg string) {
	entry := core.Entry{
		Elapsed: l.clock.Millis(),
		Level:   level,
		Tag:     tag,
		Message: msg,
	}

	buf := formatter.GetBuffer()
	l.formatter.FormatEntry(&entry, buf)
	line := buf.Bytes()

	for _, w := range l.outputs {
		if isNil(w) {
			l.stats.IncrementSkipped()
			continue
		}
		if _, err := w.Write(line); err != nil {
			l.stats.IncrementWriteErrors()
		}
	}

	formatter.PutBuffer(buf)
	l.stats.IncrementEmitted(level)
}

// Debug logs a debug message
func (l *Logger) Debug(tag, format string, args ...interface{}) {
	l.Log(core.DebugLevel, tag, format, args...)
}

// Info logs an info message
func (l *Logger) Info(tag, format string, args ...interface{}) {
	l.Log(core.InfoLevel, tag, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(tag, format string, args ...interface{}) {
	l.Log(core.WarnLevel, tag, format, args...)
}

// Error logs an error message
func (l *Logger) Error(tag, format string, args ...interface{}) {
	l.Log(core.ErrorLevel, tag, format, args...)
}

// Stats returns a snapshot of the diagnostic counters
func (l *Logger) Stats() Snapshot {
	return l.stats.GetSnapshot()
}

// Sync flushes every sink that has a Sync method. Sinks stay open.
func (l *Logger) Sync() error {
	var err error
	for _, w := range l.outputs {
		if isNil(w) {
			continue
		}
		if s, ok := w.(interface{ Sync() error }); ok {
			err = multierr.Append(err, s.Sync())
		}
	}
	return err
}

// isNil reports whether w is nil or an interface holding a nil reference
func isNil(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// sameOutput reports whether a and b are the same sink. Values of
// non-comparable types never match.
func sameOutput(a, b io.Writer) (same bool) {
	if a == nil || reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	// A comparable struct may still carry a non-comparable value in an
	// interface field
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
