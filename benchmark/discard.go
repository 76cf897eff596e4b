// Package benchmark compares taglog with other Go logging libraries when
// they all write a comparable single text line to io.Discard.
package benchmark

import (
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
)

// fixedClock keeps the elapsed field constant so every iteration renders
// the same bytes
var fixedClock = core.ClockFunc(func() uint64 { return 123456 })

// countingWriter discards writes but keeps the byte count, which stops
// the compiler from optimizing the sink away
type countingWriter struct {
	n int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}

// newTaglog returns a taglog logger with n discarding sinks.
func newTaglog(level core.Level, n int) *logger.Logger {
	b := logger.NewBuilder().
		WithLevel(level).
		WithClock(fixedClock)
	for i := 0; i < n; i++ {
		b.WithOutputs(&countingWriter{})
	}
	return b.Build()
}

// newZapLogger returns a zap.Logger that writes console lines to io.Discard.
func newZapLogger(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	enc := zapcore.NewConsoleEncoder(cfg)
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(c)
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes console lines to io.Discard.
func newZerologLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: io.Discard}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
