package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	pageRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carexyz_web",
			Name:      "page_requests_total",
			Help:      "Page requests by route and status.",
		},
		[]string{"route", "status"},
	)

	pageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carexyz_web",
			Name:      "page_request_duration_seconds",
			Help:      "Page render latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	backendCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carexyz_web",
			Name:      "backend_calls_total",
			Help:      "Outbound backend API calls by operation and status.",
		},
		[]string{"op", "status"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carexyz_web",
			Name:      "backend_call_duration_seconds",
			Help:      "Outbound backend API latency by operation.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(pageRequests, pageDuration, backendCalls, backendDuration)
	})
}

// Observer satisfies backend.Recorder and the request-logging middleware.
type Observer struct{}

func NewObserver() *Observer {
	Register()
	return &Observer{}
}

func (Observer) ObservePage(route string, status int, elapsed time.Duration) {
	pageRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	pageDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (Observer) ObserveBackendCall(op string, status int, elapsed time.Duration) {
	backendCalls.WithLabelValues(op, strconv.Itoa(status)).Inc()
	backendDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}
