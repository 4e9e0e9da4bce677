package resource

import (
	"github.com/nvellon/hal"
)

type NodeInfo struct {
	Version         string   `json:"version"`
	Genesis         string   `json:"genesis"`
	EnvelopeTypes   []string `json:"envelope_types"`
	Programs        []string `json:"programs"`
	LedgerSequence  uint32   `json:"ledger_sequence"`
	BaseFee         uint64   `json:"base_fee"`
	EmittedQueueLen int      `json:"emitted_queued"`
}

func (n NodeInfo) GetMap() hal.Entry {
	return hal.Entry{
		"version":         n.Version,
		"genesis":         n.Genesis,
		"envelope_types":  n.EnvelopeTypes,
		"programs":        n.Programs,
		"ledger_sequence": n.LedgerSequence,
		"base_fee":        n.BaseFee,
		"emitted_queued":  n.EmittedQueueLen,
	}
}

func (n NodeInfo) Resource() *hal.Resource {
	r := hal.NewResource(n, n.LinkSelf())
	r.AddLink("transactions", hal.NewLink(URLTransactions))
	r.AddLink("ledger", hal.NewLink(URLLedger))
	r.AddLink("hooks", hal.NewLink(URLAccountHooks, hal.LinkAttr{"templated": true}))
	r.AddLink("table", hal.NewLink(URLAccountTable, hal.LinkAttr{"templated": true}))
	r.AddLink("tallies", hal.NewLink(URLTopicTallies+"{?layer}", hal.LinkAttr{"templated": true}))

	return r
}

func (n NodeInfo) LinkSelf() string {
	return URLNodeInfo
}
