package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	programsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_program",
		Subsystem: "generator",
		Name:      "programs_generated_total",
		Help:      "Number of 14-day programs assembled, by primary goal and experience level.",
	}, []string{"goal", "experience"})

	programsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_program",
		Subsystem: "generator",
		Name:      "programs_failed_total",
		Help:      "Number of program generations that failed, by reason.",
	}, []string{"reason"})

	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitness_program",
		Subsystem: "generator",
		Name:      "generation_duration_seconds",
		Help:      "Time spent assembling a program, excluding persistence and delivery.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_program",
		Subsystem: "delivery",
		Name:      "emails_total",
		Help:      "Program emails handed to the transport, by outcome.",
	}, []string{"status", "kind"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_program",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness_program",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(programsGenerated, programsFailed, generationDuration, deliveries, httpRequests, httpDuration)
}

// RecordProgramGenerated counts a successful generation and its latency.
func RecordProgramGenerated(goal, experience string, elapsed time.Duration) {
	programsGenerated.WithLabelValues(goal, experience).Inc()
	generationDuration.Observe(elapsed.Seconds())
}

// RecordProgramFailed counts a failed generation. reason is a short,
// low-cardinality label such as "invalid_profile" or "day_failed".
func RecordProgramFailed(reason string) {
	programsFailed.WithLabelValues(reason).Inc()
}

// RecordDelivery counts one email outcome. kind is "welcome", "training" or
// "rest".
func RecordDelivery(status, kind string) {
	deliveries.WithLabelValues(status, kind).Inc()
}

// ObserveHTTP records one served request. route is the matched route
// template, never the raw path.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
