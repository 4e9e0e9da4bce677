package hook

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

// StaticLedger is a `Ledger` held in memory, for tests.
type StaticLedger struct {
	Sequence    uint32
	Fee         uint64
	Hooks       map[account.ID]Slots
	Definitions map[common.Hash]bool
}

func NewStaticLedger() *StaticLedger {
	return &StaticLedger{
		Sequence:    100,
		Fee:         12,
		Hooks:       map[account.ID]Slots{},
		Definitions: map[common.Hash]bool{},
	}
}

func (l *StaticLedger) LedgerSequence() uint32 {
	return l.Sequence
}

func (l *StaticLedger) HookSlots(id account.ID) (Slots, error) {
	return l.Hooks[id], nil
}

func (l *StaticLedger) HookDefinitionExists(hash common.Hash) (bool, error) {
	return l.Definitions[hash], nil
}

func (l *StaticLedger) FeeBase(*transaction.Transaction) uint64 {
	return l.Fee
}
