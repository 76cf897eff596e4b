package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
)

// DefaultNamespace prefixes every metric name unless overridden
const DefaultNamespace = "taglog"

// Collector implements prometheus.Collector for one Logger
type Collector struct {
	logger *logger.Logger

	emitted     *prometheus.Desc
	suppressed  *prometheus.Desc
	rejected    *prometheus.Desc
	skipped     *prometheus.Desc
	writeErrors *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for l. An empty namespace selects
// DefaultNamespace. constLabels are attached to every metric, which
// distinguishes several Loggers registered on one registry.
func NewCollector(l *logger.Logger, namespace string, constLabels prometheus.Labels) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Collector{
		logger: l,
		emitted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "lines_emitted_total"),
			"Total number of lines written to sinks, by level",
			[]string{"level"}, constLabels,
		),
		suppressed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "calls_suppressed_total"),
			"Total number of log calls filtered by the threshold or an invalid level",
			nil, constLabels,
		),
		rejected: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "outputs_rejected_total"),
			"Total number of nil sinks passed to AddOutput",
			nil, constLabels,
		),
		skipped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "outputs_skipped_total"),
			"Total number of nil sinks skipped during fan-out",
			nil, constLabels,
		),
		writeErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "write_errors_total"),
			"Total number of sink writes that returned an error",
			nil, constLabels,
		),
	}
}

// Describe sends the metric descriptors to ch
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.emitted
	ch <- c.suppressed
	ch <- c.rejected
	ch <- c.skipped
	ch <- c.writeErrors
}

// Collect sends the current counter values to ch
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.logger.Stats()

	for l := core.NoneLevel; l <= core.DebugLevel; l++ {
		ch <- prometheus.MustNewConstMetric(c.emitted, prometheus.CounterValue, float64(s.Emitted[l]), l.String())
	}
	ch <- prometheus.MustNewConstMetric(c.suppressed, prometheus.CounterValue, float64(s.Suppressed))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(s.RejectedOutputs))
	ch <- prometheus.MustNewConstMetric(c.skipped, prometheus.CounterValue, float64(s.SkippedOutputs))
	ch <- prometheus.MustNewConstMetric(c.writeErrors, prometheus.CounterValue, float64(s.WriteErrors))
}
