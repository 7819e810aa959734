// Package metrics counts loaded records and executed commands. Counters live
// on a private registry and are exported as a Prometheus text file at the
// end of a run, since curio is a batch tool with no scrape endpoint.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Collector owns the counters for one run.
type Collector struct {
	registry       *prometheus.Registry
	recordsLoaded  *prometheus.CounterVec
	commandsByKind *prometheus.CounterVec
}

// NewCollector registers the curio counters on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		recordsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curio_records_loaded_total",
				Help: "Records read from an input source, by file and result",
			},
			[]string{"file", "result"},
		),
		commandsByKind: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curio_commands_total",
				Help: "Commands executed, by command tag and result",
			},
			[]string{"command", "result"},
		),
	}
	c.registry.MustRegister(c.recordsLoaded, c.commandsByKind)
	return c
}

// RecordLoad counts one record read from file. A nil collector is a no-op.
func (c *Collector) RecordLoad(file, result string) {
	if c == nil {
		return
	}
	c.recordsLoaded.WithLabelValues(file, result).Inc()
}

// RecordCommand counts one executed command. A nil collector is a no-op.
func (c *Collector) RecordCommand(command, result string) {
	if c == nil {
		return
	}
	c.commandsByKind.WithLabelValues(command, result).Inc()
}

// Registry exposes the underlying registry for tests and embedding.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes the current counter values to path in the text
// exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
