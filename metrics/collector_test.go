package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/philipp01105/taglog/logger"
	"github.com/philipp01105/taglog/sink"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("uart overrun")
}

func TestCollector(t *testing.T) {
	l := logger.New()
	l.AddOutput(sink.NewMemory())
	l.AddOutput(brokenWriter{})
	l.AddOutput(nil)
	l.SetLevel(logger.WarnLevel)

	l.Error("IO", "fail")
	l.Warn("NET", "link down")
	l.Warn("NET", "still down")
	l.Info("NET", "hidden")

	c := NewCollector(l, "", nil)

	if got := testutil.CollectAndCount(c); got != 9 {
		t.Errorf("CollectAndCount() = %d, want 9", got)
	}

	expected := `
# HELP taglog_lines_emitted_total Total number of lines written to sinks, by level
# TYPE taglog_lines_emitted_total counter
taglog_lines_emitted_total{level="DEBUG"} 0
taglog_lines_emitted_total{level="ERROR"} 1
taglog_lines_emitted_total{level="INFO"} 0
taglog_lines_emitted_total{level="NONE"} 0
taglog_lines_emitted_total{level="WARN"} 2
# HELP taglog_calls_suppressed_total Total number of log calls filtered by the threshold or an invalid level
# TYPE taglog_calls_suppressed_total counter
taglog_calls_suppressed_total 1
# HELP taglog_outputs_rejected_total Total number of nil sinks passed to AddOutput
# TYPE taglog_outputs_rejected_total counter
taglog_outputs_rejected_total 1
# HELP taglog_write_errors_total Total number of sink writes that returned an error
# TYPE taglog_write_errors_total counter
taglog_write_errors_total 3
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"taglog_lines_emitted_total",
		"taglog_calls_suppressed_total",
		"taglog_outputs_rejected_total",
		"taglog_write_errors_total",
	)
	if err != nil {
		t.Error(err)
	}
}

func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewRegistry()

	a := NewCollector(logger.New(), "device", prometheus.Labels{"logger": "main"})
	b := NewCollector(logger.New(), "device", prometheus.Labels{"logger": "radio"})

	if err := reg.Register(a); err != nil {
		t.Fatalf("Register(a) error = %v", err)
	}
	if err := reg.Register(b); err != nil {
		t.Fatalf("Register(b) error = %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "device_") {
			t.Errorf("Unexpected metric name %q", mf.GetName())
		}
	}
}
