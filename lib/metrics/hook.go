package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type HookMetrics struct {
	Invocations metrics.Counter
	Emitted     metrics.Counter
}

func (m *HookMetrics) AddInvocation(program, outcome string) {
	m.Invocations.With("program", program, "outcome", outcome).Add(1)
}

func (m *HookMetrics) AddEmitted(program string, n int) {
	m.Emitted.With("program", program).Add(float64(n))
}

func PromHookMetrics() *HookMetrics {
	return &HookMetrics{
		Invocations: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: HookSubsystem,
			Name:      "invocations_total",
			Help:      "Total number of hook invocations by outcome.",
		}, []string{"program", "outcome"}),
		Emitted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: HookSubsystem,
			Name:      "emitted_total",
			Help:      "Total number of transactions emitted by accepted invocations.",
		}, []string{"program"}),
	}
}

func NopHookMetrics() *HookMetrics {
	return &HookMetrics{
		Invocations: discard.NewCounter(),
		Emitted:     discard.NewCounter(),
	}
}
