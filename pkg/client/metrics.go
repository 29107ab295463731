package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records dispatch counts and latencies per endpoint.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "llmsdk",
			Name:      "requests_total",
			Help:      "Requests dispatched to the API by endpoint and status.",
		}, []string{"endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "llmsdk",
			Name:      "request_duration_seconds",
			Help:      "Round trip latency of API requests.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"endpoint"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.requests, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("register metrics: %w", err)
			}
		}
	}

	return m, nil
}

// observe records one dispatch. statusCode 0 marks a transport failure.
func (m *Metrics) observe(endpoint string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}

	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.requests.WithLabelValues(endpoint, status).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
