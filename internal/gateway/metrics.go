package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rota",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of Gateway calls broken down by operation and result.",
	}, []string{"op", "result"})

	gatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rota",
		Subsystem: "gateway",
		Name:      "latency_seconds",
		Help:      "Latency distribution for Gateway calls.",
		Buckets: []float64{
			0.005, 0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5, 10,
		},
	}, []string{"op", "result"})
)

func observe(op string, status int, start time.Time) {
	result := "error"
	switch {
	case status >= 500:
		result = "5xx"
	case status >= 400:
		result = "4xx"
	case status >= 200:
		result = strconv.Itoa(status/100) + "xx"
	}
	gatewayRequests.WithLabelValues(op, result).Inc()
	gatewayLatency.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}
