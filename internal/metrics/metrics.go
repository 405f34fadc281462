package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalyzeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readiness_analyze_requests_total",
		Help: "Analyze requests by outcome.",
	}, []string{"outcome"})

	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readiness_persist_failures_total",
		Help: "Analysis records that failed to persist.",
	})

	ModelRoundTrip = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "readiness_model_roundtrip_seconds",
		Help:    "Latency of generation-model calls.",
		Buckets: prometheus.DefBuckets,
	})
)
