// Package observability holds the Prometheus collectors for the API server.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes, matching the engine's terminal stages.
const (
	OutcomeDone     = "done"
	OutcomeRejected = "rejected"
)

var (
	calculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "totalfit_api",
		Name:      "calculations_total",
		Help:      "Calculations handled, by outcome and resolved fitness goal.",
	}, []string{"outcome", "goal"})
	calculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "totalfit_api",
		Name:      "calculation_duration_seconds",
		Help:      "Time spent inside the metrics engine per request.",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
	})
	rejectedFieldsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "totalfit_api",
		Name:      "rejected_fields_total",
		Help:      "Input fields named in validation rejections.",
	}, []string{"field"})
)

func init() {
	prometheus.MustRegister(calculationsTotal, calculationDuration, rejectedFieldsTotal)
}

// RecordCalculation counts one engine call and its duration.
func RecordCalculation(outcome, goal string, elapsed time.Duration) {
	calculationsTotal.WithLabelValues(outcome, goal).Inc()
	calculationDuration.Observe(elapsed.Seconds())
}

// RecordRejectedFields counts each field named in a rejection.
func RecordRejectedFields(fields []string) {
	for _, f := range fields {
		rejectedFieldsTotal.WithLabelValues(f).Inc()
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
