// Package zapadapter provides a zapcore.Core that writes zap entries
// through a taglog Logger. The zap logger name, when set, becomes the
// line tag.
package zapadapter

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/internal/kv"
	"github.com/philipp01105/taglog/logger"
)

// Core routes zap entries into a Logger
type Core struct {
	logger *logger.Logger
	tag    string
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a core writing to l. tag is used for entries from an
// unnamed zap logger.
func NewCore(l *logger.Logger, tag string) *Core {
	return &Core{logger: l, tag: tag}
}

// Enabled reports whether the Logger threshold lets lvl through
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(lvl))
}

// With returns a core that appends fields to every entry
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	n := *c
	n.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	n.fields = append(n.fields, c.fields...)
	n.fields = append(n.fields, fields...)
	return &n
}

// Check adds the core to ce when the entry is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry message and fields into one line
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	tag := c.tag
	if ent.LoggerName != "" {
		tag = ent.LoggerName
	}

	var b strings.Builder
	b.WriteString(ent.Message)
	appendFields(&b, c.fields)
	appendFields(&b, fields)

	c.logger.Print(zapLevelToCore(ent.Level), tag, b.String())
	return nil
}

// Sync flushes the Logger's sinks
func (c *Core) Sync() error {
	return c.logger.Sync()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendFields encodes each field on its own so that field order is kept
func appendFields(b *strings.Builder, fields []zapcore.Field) {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)

		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			kv.Append(b, k, fmt.Sprint(enc.Fields[k]))
		}
	}
}
