package transaction

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
)

const (
	// emitted transactions are valid from the next ledger ...
	EmitFirstLedgerOffset uint32 = 1
	// ... up to 5 ledgers ahead
	EmitLastLedgerOffset uint32 = 5
)

// EmitEnvironment is what the host tells a hook about the transaction it is
// going to emit.
type EmitEnvironment interface {
	LedgerSequence() uint32
	EmitDetails() EmitDetails
	FeeBase(*Transaction) uint64
}

// Builder builds the transactions hooks emit. The transactions are complete
// except for the wire encoding, which belongs to the host.
type Builder struct {
	env EmitEnvironment
}

func NewBuilder(env EmitEnvironment) Builder {
	return Builder{env: env}
}

func (b Builder) prepare(tx *Transaction) *Transaction {
	sequence := b.env.LedgerSequence()
	details := b.env.EmitDetails()

	tx.Flags = FlagCanonical
	tx.Sequence = 0
	tx.FirstLedgerSequence = sequence + EmitFirstLedgerOffset
	tx.LastLedgerSequence = sequence + EmitLastLedgerOffset
	tx.SigningPubKey = HexBytes{}
	tx.EmitDetails = &details
	tx.Fee = b.env.FeeBase(tx)

	return tx
}

// Invoke builds an `Invoke` from source to destination with params.
func (b Builder) Invoke(source, destination account.ID, params ...HookParameter) *Transaction {
	return b.prepare(NewInvoke(source, destination, params...))
}

// SetHook builds a `SetHook` on source which changes only slot; the other
// slots stay untouched.
func (b Builder) SetHook(source account.ID, slot uint8, entry HookEntry) (*Transaction, error) {
	hooks, err := NewHookEntries(slot, entry)
	if err != nil {
		return nil, err
	}

	return b.prepare(NewSetHook(source, hooks)), nil
}

// InstallOrDeleteHook installs hash at slot, or deletes the slot when hash is
// all zero.
func (b Builder) InstallOrDeleteHook(source account.ID, slot uint8, hash common.Hash) (*Transaction, error) {
	return b.SetHook(source, slot, NewHookEntryFromVote(hash))
}
