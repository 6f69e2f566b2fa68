// Package monitor exposes dashboard metrics through a private prometheus
// registry.
package monitor

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "datagov"

// Collector records operation timings, navigation and ask outcomes
type Collector struct {
	registry *prometheus.Registry

	operations   *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	navigations  *prometheus.CounterVec
	asks         *prometheus.CounterVec
	askTokens    prometheus.Counter
	catalogItems *prometheus.GaugeVec
}

// New creates a collector with Go runtime and process collectors attached
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Tracked operations by type and status.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of tracked operations.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 15, 30},
		}, []string{"operation"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Screen transitions by target view and cause.",
		}, []string{"to", "cause"}),
		asks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asks_total",
			Help:      "Assistant asks by provider and outcome.",
		}, []string{"provider", "outcome"}),
		askTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ask_tokens_total",
			Help:      "Tokens reported by the assistant provider.",
		}),
		catalogItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Entities in the loaded catalog by kind.",
		}, []string{"kind"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.operations, c.durations, c.navigations, c.asks, c.askTokens, c.catalogItems,
	)
	return c
}

// TrackOperation tracks an operation with timing
func (c *Collector) TrackOperation(operation OperationType, fn func()) {
	_ = c.TrackOperationWithError(operation, func() error {
		fn()
		return nil
	})
}

// TrackOperationWithError tracks an operation that may return an error and
// passes the error through.
func (c *Collector) TrackOperationWithError(operation OperationType, fn func() error) error {
	start := time.Now()
	err := fn()
	c.Observe(operation, time.Since(start), err)
	return err
}

// Observe records an operation that was timed elsewhere
func (c *Collector) Observe(operation OperationType, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.operations.WithLabelValues(string(operation), status).Inc()
	c.durations.WithLabelValues(string(operation)).Observe(d.Seconds())
}

// RecordNavigation counts one screen transition
func (c *Collector) RecordNavigation(to, cause string) {
	c.navigations.WithLabelValues(to, cause).Inc()
}

// RecordAsk counts an ask outcome and its token usage
func (c *Collector) RecordAsk(provider, outcome string, tokens int) {
	c.asks.WithLabelValues(provider, outcome).Inc()
	if tokens > 0 {
		c.askTokens.Add(float64(tokens))
	}
}

// SetCatalogSize publishes entity counts after a load or reload
func (c *Collector) SetCatalogSize(counts map[string]int) {
	for kind, n := range counts {
		c.catalogItems.WithLabelValues(kind).Set(float64(n))
	}
}

// Snapshot gathers the datagov series into a plain struct
func (c *Collector) Snapshot() (Snapshot, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{
		Timestamp:  time.Now(),
		Operations: make(map[OperationType]OperationMetrics),
		Asks:       make(map[string]int64),
	}

	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_operations_total":
			for _, m := range mf.GetMetric() {
				op := OperationType(label(m, "operation"))
				om := s.Operations[op]
				om.Operation = op
				if label(m, "status") == "error" {
					om.ErrorCount += int64(m.GetCounter().GetValue())
				} else {
					om.SuccessCount += int64(m.GetCounter().GetValue())
				}
				s.Operations[op] = om
			}
		case namespace + "_operation_duration_seconds":
			for _, m := range mf.GetMetric() {
				op := OperationType(label(m, "operation"))
				om := s.Operations[op]
				om.Operation = op
				om.TotalTime += time.Duration(m.GetHistogram().GetSampleSum() * float64(time.Second))
				s.Operations[op] = om
			}
		case namespace + "_navigations_total":
			for _, m := range mf.GetMetric() {
				s.Navigations += int64(m.GetCounter().GetValue())
			}
		case namespace + "_asks_total":
			for _, m := range mf.GetMetric() {
				s.Asks[label(m, "outcome")] += int64(m.GetCounter().GetValue())
			}
		case namespace + "_ask_tokens_total":
			for _, m := range mf.GetMetric() {
				s.AskTokens += int64(m.GetCounter().GetValue())
			}
		}
	}

	return s, nil
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

// ErrNoAddr is returned by Serve when metrics are disabled
var ErrNoAddr = errors.New("metrics address is empty")
