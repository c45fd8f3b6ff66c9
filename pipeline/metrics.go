package pipeline

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the run metrics on a private registry so repeated runs in
// one process (watch mode) never double-register collectors.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal    prometheus.Counter
	RunDuration  prometheus.Histogram
	GraphNodes   *prometheus.GaugeVec
	GraphEdges   *prometheus.GaugeVec
	TermsMapped  *prometheus.GaugeVec
	Diagnostics  *prometheus.CounterVec
}

// NewMetrics creates and registers the pipeline metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ontomap_runs_total",
			Help: "Number of completed mapping runs.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ontomap_run_duration_seconds",
			Help:    "Wall-clock duration of a complete mapping run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		GraphNodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontomap_subgraph_nodes",
			Help: "Nodes in the extracted subgraph per domain.",
		}, []string{"domain"}),
		GraphEdges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontomap_subgraph_edges",
			Help: "Edges in the extracted subgraph per domain.",
		}, []string{"domain"}),
		TermsMapped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontomap_terms_mapped",
			Help: "Production terms covered by the ancestor mapping per domain.",
		}, []string{"domain"}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ontomap_diagnostics_total",
			Help: "Diagnostics raised during mapping runs by domain and reason.",
		}, []string{"domain", "reason"}),
	}

	registry.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.GraphNodes,
		m.GraphEdges,
		m.TermsMapped,
		m.Diagnostics,
	)
	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
