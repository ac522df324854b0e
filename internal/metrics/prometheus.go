package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration *prom.HistogramVec
	buildOutcome  *prom.CounterVec
	entries       *prom.GaugeVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "theme_docs",
			Name:      "tree_build_duration_seconds",
			Help:      "Duration of documentation tree builds",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "theme_docs",
			Name:      "tree_builds_total",
			Help:      "Tree builds by kind and outcome",
		}, []string{"kind", "outcome"}),
		entries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "theme_docs",
			Name:      "tree_entries",
			Help:      "Markdown files in the most recent tree build",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.entries)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(kind string, d time.Duration) {
	p.buildDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(kind string, outcome Outcome) {
	p.buildOutcome.WithLabelValues(kind, string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveEntries(kind string, n int) {
	p.entries.WithLabelValues(kind).Set(float64(n))
}

// HTTPHandler serves the metrics gathered by reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
