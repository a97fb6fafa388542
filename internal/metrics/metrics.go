package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	serviceAssignments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "service_assignments_total",
			Help:      "Service assignments by disposition (created, merged, failed).",
		},
		[]string{"disposition"},
	)

	accessDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "access_denied_total",
			Help:      "Requests rejected by the role gate, by operation.",
		},
		[]string{"operation"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, serviceAssignments, accessDenied)
	})
}

func IncHTTP(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func IncAssignment(disposition string) {
	serviceAssignments.WithLabelValues(disposition).Inc()
}

func IncAccessDenied(operation string) {
	accessDenied.WithLabelValues(operation).Inc()
}
