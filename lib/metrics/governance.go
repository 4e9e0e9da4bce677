package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type GovernanceMetrics struct {
	Votes   metrics.Counter
	Actions metrics.Counter
}

func (m *GovernanceMetrics) AddVote(topic, layer string) {
	m.Votes.With("topic", topic, "layer", layer).Add(1)
}

func (m *GovernanceMetrics) AddAction(action string) {
	m.Actions.With("action", action).Add(1)
}

func PromGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		Votes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "votes_total",
			Help:      "Total number of recorded votes.",
		}, []string{"topic", "layer"}),
		Actions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "actions_total",
			Help:      "Total number of enacted decisions by kind.",
		}, []string{"action"}),
	}
}

func NopGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		Votes:   discard.NewCounter(),
		Actions: discard.NewCounter(),
	}
}
