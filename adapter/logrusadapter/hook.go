// Package logrusadapter provides a logrus hook that copies logrus
// entries into a taglog Logger. Set the logrus output to io.Discard when
// the Logger should be the only destination.
package logrusadapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/internal/kv"
	"github.com/philipp01105/taglog/logger"
)

// TagField is the entry field whose value is used as the line tag
const TagField = "tag"

// Hook forwards logrus entries to a Logger
type Hook struct {
	logger *logger.Logger
	tag    string
}

var _ logrus.Hook = (*Hook)(nil)

// NewHook creates a hook writing to l with the given default tag
func NewHook(l *logger.Logger, tag string) *Hook {
	return &Hook{logger: l, tag: tag}
}

// Levels returns every logrus level; filtering is left to the Logger
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire renders the entry message and fields, sorted by key, into one line
func (h *Hook) Fire(e *logrus.Entry) error {
	tag := h.tag
	keys := make([]string, 0, len(e.Data))
	for k, v := range e.Data {
		if k == TagField {
			tag = fmt.Sprint(v)
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, k := range keys {
		v := e.Data[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		kv.Append(&b, k, fmt.Sprint(v))
	}

	h.logger.Print(logrusLevelToCore(e.Level), tag, b.String())
	return nil
}

// logrusLevelToCore converts a logrus.Level to a core.Level.
func logrusLevelToCore(lvl logrus.Level) core.Level {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
