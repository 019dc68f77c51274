package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "generation_requests_total", Help: "Calls to the text-generation service by prompt kind and outcome."},
		[]string{"kind", "outcome"},
	)
	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "studydesk", Name: "generation_duration_seconds", Help: "Latency of text-generation calls.", Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}},
		[]string{"kind"},
	)
	ExtractionFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "extraction_failures_total", Help: "Generated outputs from which no JSON task array could be extracted."},
	)
	ArtifactsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "artifacts_written_total", Help: "Spreadsheet artifacts written by storage backend."},
		[]string{"backend"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(GenerationRequests)
	reg.MustRegister(GenerationDuration)
	reg.MustRegister(ExtractionFailures)
	reg.MustRegister(ArtifactsWritten)
}
