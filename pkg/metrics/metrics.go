// Package metrics exposes a solve run's progress as Prometheus metrics. This
// is the complementary direction from a query client: the solve process
// itself is the thing running on a cluster worker, so it exposes counters
// and gauges rather than querying someone else's.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the metric instruments a solve run updates as it
// progresses. Construct one per process with NewRecorder.
type Recorder struct {
	registry *prometheus.Registry

	Incumbent        prometheus.Gauge
	EvaluationsTotal *prometheus.CounterVec
	LocalFailures    *prometheus.CounterVec
	RoundDuration    *prometheus.HistogramVec
}

// NewRecorder builds a Recorder backed by its own registry so a solve
// process never collides with default-registry metrics from an embedding
// application.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		Incumbent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "tiktak",
			Name:      "incumbent_value",
			Help:      "Current incumbent objective value for the in-progress solve.",
		}),

		EvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tiktak",
			Name:      "evaluations_total",
			Help:      "Count of objective or local-method evaluations, by phase.",
		}, []string{"phase"}),

		LocalFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tiktak",
			Name:      "local_failures_total",
			Help:      "Count of local-method calls that returned ok=false or a non-accepted status, by phase.",
		}, []string{"phase"}),

		RoundDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tiktak",
			Name:      "round_duration_seconds",
			Help:      "Wall-clock duration of one EvaluationPool join, by phase.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
	}
}

// Handler returns an http.Handler serving this Recorder's registry in the
// Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
