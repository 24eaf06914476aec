// Package metrics keeps prometheus metrics on dispatcher activity.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "homecmd"

// Metrics implements dispatch.Observer on a private prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	executions  *prometheus.CounterVec
	undos       *prometheus.CounterVec
	evictions   prometheus.Counter
	historySize prometheus.Gauge
}

// New returns metrics registered on a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "executions_total",
				Help:      "Slot executions by outcome.",
			},
			[]string{"outcome"},
		),
		undos: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "undos_total",
				Help:      "Undo requests by outcome.",
			},
			[]string{"outcome"},
		),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_evictions_total",
			Help:      "History entries dropped because the history was full.",
		}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_size",
			Help:      "Number of entries currently in the undo history.",
		}),
	}
	m.registry.MustRegister(m.executions, m.undos, m.evictions, m.historySize)
	return m
}

func (m *Metrics) ObserveExecute(outcome string) { m.executions.WithLabelValues(outcome).Inc() }
func (m *Metrics) ObserveUndo(outcome string)    { m.undos.WithLabelValues(outcome).Inc() }
func (m *Metrics) ObserveEviction()              { m.evictions.Inc() }
func (m *Metrics) ObserveHistorySize(size int)   { m.historySize.Set(float64(size)) }

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Dump writes all gathered metrics to w in the text exposition format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("could not write metric family '%s': %w", family.GetName(), err)
		}
	}
	return nil
}
