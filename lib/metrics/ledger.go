package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type LedgerMetrics struct {
	Sequence      metrics.Gauge
	AppliedTxs    metrics.Counter
	EmittedQueued metrics.Gauge
}

func (m *LedgerMetrics) SetSequence(sequence uint32) {
	m.Sequence.Set(float64(sequence))
}

func (m *LedgerMetrics) AddAppliedTx(txType string) {
	m.AppliedTxs.With("type", txType).Add(1)
}

func (m *LedgerMetrics) SetEmittedQueued(n int) {
	m.EmittedQueued.Set(float64(n))
}

func PromLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Sequence: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "sequence",
			Help:      "Sequence of the open ledger.",
		}, []string{}),
		AppliedTxs: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "applied_txs_total",
			Help:      "Total number of applied transactions by type.",
		}, []string{"type"}),
		EmittedQueued: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "emitted_queued",
			Help:      "Number of emitted transactions waiting for the next ledger.",
		}, []string{}),
	}
}

func NopLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Sequence:      discard.NewGauge(),
		AppliedTxs:    discard.NewCounter(),
		EmittedQueued: discard.NewGauge(),
	}
}
