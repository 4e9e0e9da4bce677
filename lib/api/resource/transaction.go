package resource

import (
	"github.com/nvellon/hal"

	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

type ApplyResult struct {
	result ledger.ApplyResult
}

func NewApplyResult(result ledger.ApplyResult) *ApplyResult {
	return &ApplyResult{result: result}
}

func (a ApplyResult) GetMap() hal.Entry {
	emitted := make([]string, len(a.result.Emitted))
	for i, h := range a.result.Emitted {
		emitted[i] = h.String()
	}

	return hal.Entry{
		"hash":            a.result.Hash.String(),
		"type":            a.result.Type.String(),
		"ledger_sequence": a.result.Sequence,
		"accepted":        a.result.Accepted,
		"message":         a.result.Message,
		"hooks":           a.result.Hooks,
		"emitted":         emitted,
	}
}

func (a ApplyResult) Resource() *hal.Resource {
	return hal.NewResource(a, a.LinkSelf())
}

func (a ApplyResult) LinkSelf() string {
	return replaceVars(URLTransaction, "{id}", a.result.Hash.String())
}

type Transaction struct {
	tx *transaction.Transaction
}

func NewTransaction(tx *transaction.Transaction) *Transaction {
	return &Transaction{tx: tx}
}

func (t Transaction) GetMap() hal.Entry {
	return hal.Entry{
		"hash":        t.tx.Hash().String(),
		"transaction": t.tx,
	}
}

func (t Transaction) Resource() *hal.Resource {
	return hal.NewResource(t, t.LinkSelf())
}

func (t Transaction) LinkSelf() string {
	return replaceVars(URLTransaction, "{id}", t.tx.Hash().String())
}

type CloseResult struct {
	result ledger.CloseResult
}

func NewCloseResult(result ledger.CloseResult) *CloseResult {
	return &CloseResult{result: result}
}

func (c CloseResult) GetMap() hal.Entry {
	expired := make([]string, len(c.result.Expired))
	for i, h := range c.result.Expired {
		expired[i] = h.String()
	}

	return hal.Entry{
		"ledger_sequence": c.result.Sequence,
		"expired":         expired,
	}
}

func (c CloseResult) Resource() *hal.Resource {
	r := hal.NewResource(c, c.LinkSelf())

	applied := hal.ResourceCollection{}
	for _, a := range c.result.Applied {
		applied = append(applied, NewApplyResult(a).Resource())
	}
	r.EmbedCollection("applied", applied)

	return r
}

func (c CloseResult) LinkSelf() string {
	return URLLedger
}
