package slogadapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/internal/kv"
	"github.com/philipp01105/taglog/logger"
)

// TagKey is the attribute key whose value is used as the line tag
const TagKey = "tag"

// Handler is an adapter that implements slog.Handler on top of a Logger
type Handler struct {
	logger *logger.Logger
	tag    string
	attrs  string // pre-rendered " key=value" pairs
	group  string
}

// NewHandler creates a new slog.Handler writing to l with the given tag
func NewHandler(l *logger.Logger, tag string) *Handler {
	return &Handler{
		logger: l,
		tag:    tag,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(slogLevelToCore(level))
}

// Handle renders the record message and attributes into one line
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	tag := h.tag

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)

	record.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == TagKey {
			tag = a.Value.Resolve().String()
			return true
		}
		appendAttr(&b, h.group, a)
		return true
	})

	h.logger.Print(slogLevelToCore(record.Level), tag, b.String())
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := *h

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if h.group == "" && a.Key == TagKey {
			n.tag = a.Value.Resolve().String()
			continue
		}
		appendAttr(&b, h.group, a)
	}
	n.attrs = b.String()
	return &n
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	n := *h
	if n.group != "" {
		n.group = n.group + "." + name
	} else {
		n.group = name
	}
	return &n
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes a, prefixed with group, as key=value pairs. Groups
// are flattened with dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	kv.Append(b, key, a.Value.String())
}
