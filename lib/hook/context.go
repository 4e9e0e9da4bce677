package hook

import (
	"encoding/binary"

	logging "github.com/inconshreveable/log15"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

const MaxEmitReserve = 255

// Slots are the hook hashes installed on an account; an empty slot is the
// zero hash.
type Slots [transaction.HookMax]common.Hash

// Ledger is the read only view of the ledger a hook runs against.
type Ledger interface {
	LedgerSequence() uint32
	HookSlots(account.ID) (Slots, error)
	HookDefinitionExists(common.Hash) (bool, error)
	FeeBase(*transaction.Transaction) uint64
}

// Context is passed to a `Program` for a single invocation.
type Context struct {
	InvocationID    string
	HookAccount     account.ID
	HookHash        common.Hash
	Transaction     *transaction.Transaction
	TransactionHash common.Hash
	State           State
	Ledger          Ledger
	Log             logging.Logger

	reserve  int
	reserved bool
	nonce    uint32
	emitted  []*transaction.Transaction
}

func NewContext(hookAccount account.ID, hookHash common.Hash, tx *transaction.Transaction, state State, ledger Ledger, logger logging.Logger) *Context {
	if logger == nil {
		logger = log
	}

	return &Context{
		HookAccount:     hookAccount,
		HookHash:        hookHash,
		Transaction:     tx,
		TransactionHash: tx.Hash(),
		State:           state,
		Ledger:          ledger,
		Log:             logger,
	}
}

// Reserve sets how many transactions the invocation may emit. It can be
// called once.
func (c *Context) Reserve(n int) error {
	if c.reserved {
		return errors.HookReserveAlreadySet
	}
	if n < 0 || n > MaxEmitReserve {
		return errors.HookEmitReserveExceeded.Clone().SetData("reserve", n)
	}

	c.reserve = n
	c.reserved = true

	return nil
}

// Emit queues tx and returns its id. tx must be built by `Builder`.
func (c *Context) Emit(tx *transaction.Transaction) (common.Hash, error) {
	if !c.reserved {
		return common.ZeroHash, errors.HookEmitNotReserved
	}
	if len(c.emitted) >= c.reserve {
		return common.ZeroHash, errors.HookEmitReserveExceeded.Clone().SetData("reserve", c.reserve)
	}
	if !tx.IsEmitted() {
		return common.ZeroHash, errors.HookEmitFailed.Clone().SetData("reason", "missing emit details")
	}
	if err := tx.IsWellFormed(); err != nil {
		return common.ZeroHash, errors.HookEmitFailed.Clone().SetData("reason", err.Error())
	}

	c.emitted = append(c.emitted, tx)

	return tx.Hash(), nil
}

func (c *Context) Emitted() []*transaction.Transaction {
	return c.emitted
}

func (c *Context) Builder() transaction.Builder {
	return transaction.NewBuilder(c)
}

func (c *Context) LedgerSequence() uint32 {
	return c.Ledger.LedgerSequence()
}

func (c *Context) FeeBase(tx *transaction.Transaction) uint64 {
	return c.Ledger.FeeBase(tx)
}

// EmitDetails returns the details for the next emitted transaction; every
// call yields a new nonce.
func (c *Context) EmitDetails() transaction.EmitDetails {
	generation := uint32(1)
	burden := uint64(1)
	if parent := c.Transaction.EmitDetails; parent != nil {
		generation = parent.EmitGeneration + 1
		burden = parent.EmitBurden * uint64(c.reserve)
	}

	counter := make([]byte, 4)
	binary.BigEndian.PutUint32(counter, c.nonce)
	c.nonce++

	return transaction.EmitDetails{
		EmitGeneration:  generation,
		EmitBurden:      burden,
		EmitParentTxnID: c.TransactionHash,
		EmitNonce:       common.SHA512Half(c.TransactionHash.Bytes(), c.HookHash.Bytes(), counter),
		EmitHookHash:    c.HookHash,
	}
}
