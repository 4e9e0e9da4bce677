package ledger

import (
	"sync"

	"github.com/hashicorp/golang-lru"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

const (
	GenesisSequence            uint32 = 1
	DefaultBaseFee             uint64 = 10
	DefaultDefinitionCacheSize        = 128
)

// Ledger is a single node ledger which keeps hook slots, hook definitions,
// hook state and the queue of emitted transactions. Transactions are
// applied one at a time.
type Ledger struct {
	sync.Mutex

	st          *storage.LevelDBBackend
	baseFee     uint64
	definitions *lru.Cache
}

func New(st *storage.LevelDBBackend, baseFee uint64) (*Ledger, error) {
	definitions, err := lru.New(DefaultDefinitionCacheSize)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		st:          st,
		baseFee:     baseFee,
		definitions: definitions,
	}

	if exists, err := st.Has([]byte(KeyPrefixSequence)); err != nil {
		return nil, err
	} else if !exists {
		if err = st.Set(KeyPrefixSequence, GenesisSequence); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (l *Ledger) Storage() *storage.LevelDBBackend {
	return l.st
}

func (l *Ledger) BaseFee() uint64 {
	return l.baseFee
}

// Sequence is the sequence of the open ledger.
func (l *Ledger) Sequence() (uint32, error) {
	return getSequence(l.st)
}

func getSequence(st *storage.LevelDBBackend) (sequence uint32, err error) {
	err = st.Get(KeyPrefixSequence, &sequence)
	return
}

func (l *Ledger) HookSlots(id account.ID) (hook.Slots, error) {
	return getSlots(l.st, id)
}

func getSlots(st *storage.LevelDBBackend, id account.ID) (slots hook.Slots, err error) {
	if err = st.Get(GetHooksKey(id), &slots); errors.StorageRecordDoesNotExist.Is(err) {
		err = nil
	}

	return
}

func setSlots(st *storage.LevelDBBackend, id account.ID, slots hook.Slots) error {
	return st.Set(GetHooksKey(id), slots)
}

// AddDefinition stores a hook definition; definitions are addressed by
// their hook hash.
func (l *Ledger) AddDefinition(definition hook.Definition) error {
	if hook.Hash(definition.CreateCode) != definition.HookHash {
		return errors.InvalidHash.Clone().SetData("hook-hash", definition.HookHash)
	}

	return l.st.Set(GetDefinitionKey(definition.HookHash), definition)
}

func (l *Ledger) Definition(hash common.Hash) (hook.Definition, error) {
	return l.definition(l.st, hash)
}

func (l *Ledger) definition(st *storage.LevelDBBackend, hash common.Hash) (definition hook.Definition, err error) {
	if cached, found := l.definitions.Get(hash); found {
		return cached.(hook.Definition), nil
	}

	if err = st.Get(GetDefinitionKey(hash), &definition); err != nil {
		if errors.StorageRecordDoesNotExist.Is(err) {
			err = errors.HookDefinitionNotFound.Clone().SetData("hook-hash", hash)
		}
		return
	}

	l.definitions.Add(hash, definition)

	return
}

// view is what hooks see of the ledger while a transaction is applied.
type view struct {
	l        *Ledger
	st       *storage.LevelDBBackend
	sequence uint32
}

func (v *view) LedgerSequence() uint32 {
	return v.sequence
}

func (v *view) HookSlots(id account.ID) (hook.Slots, error) {
	return getSlots(v.st, id)
}

func (v *view) HookDefinitionExists(hash common.Hash) (bool, error) {
	if _, err := v.l.definition(v.st, hash); err != nil {
		if errors.HookDefinitionNotFound.Is(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (v *view) FeeBase(*transaction.Transaction) uint64 {
	return v.l.baseFee
}
