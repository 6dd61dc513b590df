// Package metrics exposes pipeline counters as a prometheus.Collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rowsync/rowsync"
)

// Source is anything that can snapshot pipeline counters; in practice this
// is a *rowsync.Client of any record type.
type Source interface {
	Stats() rowsync.Stats
}

// Collector reads a Source on every scrape. Register one per client:
//
//	prometheus.MustRegister(metrics.NewCollector(client))
type Collector struct {
	source Source

	submitted   *prometheus.Desc
	completed   *prometheus.Desc
	failed      *prometheus.Desc
	outstanding *prometheus.Desc
}

func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,

		submitted: prometheus.NewDesc(
			"rowsync_commands_submitted_total",
			"Total number of commands accepted for execution",
			nil, nil,
		),
		completed: prometheus.NewDesc(
			"rowsync_commands_completed_total",
			"Total number of commands whose function returned records",
			nil, nil,
		),
		failed: prometheus.NewDesc(
			"rowsync_commands_failed_total",
			"Total number of commands whose function returned an error",
			nil, nil,
		),
		outstanding: prometheus.NewDesc(
			"rowsync_tasks_outstanding",
			"Number of in-flight tasks after the last tick",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.completed
	ch <- c.failed
	ch <- c.outstanding
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(stats.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(stats.Completed))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(stats.Failed))
	ch <- prometheus.MustNewConstMetric(c.outstanding, prometheus.GaugeValue, float64(stats.Outstanding))
}
