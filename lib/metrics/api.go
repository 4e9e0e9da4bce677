package metrics

import (
	"strconv"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// APIMetrics are labeled by the route template, `/v1/accounts/{id}/hooks`,
// so account ids do not become label values.
type APIMetrics struct {
	Requests        metrics.Counter
	RequestErrors   metrics.Counter
	RequestDuration metrics.Histogram
}

// AddRequest counts one served request; status 400 and above is an error.
func (m *APIMetrics) AddRequest(route, method string, status int, took time.Duration) {
	code := strconv.Itoa(status)

	m.Requests.With("route", route, "method", method, "code", code).Add(1)
	m.RequestDuration.With("route", route, "method", method).Observe(took.Seconds())
	if status >= 400 {
		m.RequestErrors.With("route", route, "method", method, "code", code).Add(1)
	}
}

func PromAPIMetrics() *APIMetrics {
	return &APIMetrics{
		Requests: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "requests_total",
			Help:      "Requests served by route, method and status code.",
		}, []string{"route", "method", "code"}),
		RequestErrors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_errors_total",
			Help:      "Requests answered with a problem, status 400 and above.",
		}, []string{"route", "method", "code"}),
		RequestDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving a request, including hook execution for votes.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"route", "method"}),
	}
}

func NopAPIMetrics() *APIMetrics {
	return &APIMetrics{
		Requests:        discard.NewCounter(),
		RequestErrors:   discard.NewCounter(),
		RequestDuration: discard.NewHistogram(),
	}
}
