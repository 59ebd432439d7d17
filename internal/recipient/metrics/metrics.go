package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Metrics provides observability for recipient resolution.
type Metrics struct {
	// Topic membership lookup latency by outcome
	TopicLookupLatency *prometheus.HistogramVec

	// Resolution outcomes by status
	ResolutionOutcome *prometheus.CounterVec

	// Size of the final recipient list
	ResolvedSubscribers prometheus.Histogram
}

// NewWithRegisterer registers the metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TopicLookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recipient_topic_lookup_duration_seconds",
			Help:    "Duration of topic membership lookups by outcome",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"status"}),

		ResolutionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recipient_resolutions_total",
			Help: "Total recipient resolutions by status",
		}, []string{"status"}),

		ResolvedSubscribers: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recipient_resolved_subscribers",
			Help:    "Number of subscribers in a resolved recipient list",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

// ObserveTopicLookup records the duration of one membership lookup.
func (m *Metrics) ObserveTopicLookup(status string, d time.Duration) {
	if m != nil {
		m.TopicLookupLatency.WithLabelValues(status).Observe(d.Seconds())
	}
}

// IncrementOutcome records a resolution outcome.
func (m *Metrics) IncrementOutcome(status string) {
	if m != nil {
		m.ResolutionOutcome.WithLabelValues(status).Inc()
	}
}

// ObserveResolved records the size of a resolved list.
func (m *Metrics) ObserveResolved(n int) {
	if m != nil {
		m.ResolvedSubscribers.Observe(float64(n))
	}
}
