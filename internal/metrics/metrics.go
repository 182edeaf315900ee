// Package metrics exposes funding and action counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "giftwish"

type Metrics struct {
	registry *prometheus.Registry

	FundingPercent *prometheus.GaugeVec
	Overfunded     prometheus.Gauge
	FlagMismatch   prometheus.Gauge
	Actions        *prometheus.CounterVec
}

// New builds a private registry with the service collectors plus the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FundingPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wishlist_funding_percent",
			Help:      "Funding progress of a wishlist, 0-100 and above when over-raised.",
		}, []string{"wishlist"}),
		Overfunded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_overfunded",
			Help:      "Gift items that raised more than their goal.",
		}),
		FlagMismatch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_flag_mismatch",
			Help:      "Gift items whose stored completion flag disagrees with the amounts.",
		}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Social actions received, by kind.",
		}, []string{"action"}),
	}

	m.registry.MustRegister(
		m.FundingPercent,
		m.Overfunded,
		m.FlagMismatch,
		m.Actions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAction counts one action. Safe on a nil receiver so callers can
// run with metrics disabled.
func (m *Metrics) ObserveAction(action string) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(action).Inc()
}

// FundingSnapshot is one digest pass worth of gauge values.
type FundingSnapshot struct {
	Percent      map[string]float64
	Overfunded   int
	FlagMismatch int
}

// PublishFunding replaces the funding gauges with s. Wishlists missing from
// s are dropped from the vector.
func (m *Metrics) PublishFunding(s FundingSnapshot) {
	if m == nil {
		return
	}
	m.FundingPercent.Reset()
	for wishlist, pct := range s.Percent {
		m.FundingPercent.WithLabelValues(wishlist).Set(pct)
	}
	m.Overfunded.Set(float64(s.Overfunded))
	m.FlagMismatch.Set(float64(s.FlagMismatch))
}
