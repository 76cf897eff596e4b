package slogadapter

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
	"github.com/philipp01105/taglog/sink"
)

func newTestLogger(level core.Level) (*logger.Logger, *sink.Memory) {
	mem := sink.NewMemory()
	l := logger.NewBuilder().
		WithLevel(level).
		WithClock(core.ClockFunc(func() uint64 { return 10 })).
		WithOutputs(mem).
		Build()
	return l, mem
}

func TestHandler_Enabled(t *testing.T) {
	l, _ := newTestLogger(core.InfoLevel)
	h := NewHandler(l, "APP")

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestHandler_Handle(t *testing.T) {
	l, mem := newTestLogger(core.DebugLevel)
	log := slog.New(NewHandler(l, "APP"))

	log.Warn("disk almost full", "free", "12MB", "mount", "/data")

	want := "\x1b[33m    10 [W] [APP] disk almost full free=12MB mount=/data\x1b[0m\n"
	if got := mem.String(); got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestHandler_TagAttr(t *testing.T) {
	l, mem := newTestLogger(core.DebugLevel)
	log := slog.New(NewHandler(l, "APP"))

	log.Info("connected", TagKey, "NET", "peer", "10.0.0.2")
	if !strings.Contains(mem.String(), "[I] [NET] connected peer=10.0.0.2") {
		t.Errorf("Expected tag from attribute, got: %q", mem.String())
	}

	mem.Reset()
	log.With(TagKey, "IO").Error("read failed", "count", 3)
	if !strings.Contains(mem.String(), "[E] [IO] read failed count=3") {
		t.Errorf("Expected tag from With, got: %q", mem.String())
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	l, mem := newTestLogger(core.DebugLevel)
	log := slog.New(NewHandler(l, "APP")).
		With("fw", "1.2.0").
		WithGroup("req")

	log.Debug("handled", "method", "GET", slog.Group("resp", "status", 200))

	want := "handled fw=1.2.0 req.method=GET req.resp.status=200"
	if !strings.Contains(mem.String(), want) {
		t.Errorf("Expected %q in output, got: %q", want, mem.String())
	}
}

func TestHandler_Filtered(t *testing.T) {
	l, mem := newTestLogger(core.WarnLevel)
	log := slog.New(NewHandler(l, "APP"))

	log.Info("hidden")
	log.Debug("hidden")
	if mem.Writes() != 0 {
		t.Errorf("Filtered records reached the sink: %q", mem.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.DebugLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
