package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the application's Prometheus metrics.
type Collector struct {
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
}

// NewCollector registers and returns the metrics collector.
func NewCollector(namespace string) *Collector {
	return &Collector{
		UpstreamRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of upstream provider requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		UpstreamRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Upstream provider request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"endpoint"},
		),
	}
}

// ObserveUpstream records one upstream call. A nil receiver is a no-op so
// callers without metrics wiring (tests) can pass nil.
func (c *Collector) ObserveUpstream(endpoint string, start time.Time, err error) {
	if c == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	c.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
