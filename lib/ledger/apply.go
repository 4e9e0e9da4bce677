package ledger

import (
	logging "github.com/inconshreveable/log15"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

type ApplyResult struct {
	Hash     common.Hash        `json:"hash"`
	Type     transaction.TxType `json:"type"`
	Sequence uint32             `json:"ledger_sequence"`
	Accepted bool               `json:"accepted"`
	Message  string             `json:"message,omitempty"`
	Hooks    []hook.Result      `json:"hooks"`
	Emitted  []common.Hash      `json:"emitted,omitempty"`
}

// hookAccounts are the accounts whose hooks see tx, the destination first.
func hookAccounts(tx *transaction.Transaction) []account.ID {
	var accounts []account.ID
	if tx.HasDestination() {
		accounts = append(accounts, *tx.Destination)
	}
	if !tx.HasDestination() || *tx.Destination != tx.Account {
		accounts = append(accounts, tx.Account)
	}

	return accounts
}

// Apply runs the hooks of the destination and the source of tx and applies
// tx when every hook accepts. A rolled back hook rejects tx and nothing of
// it is written.
func (l *Ledger) Apply(tx *transaction.Transaction) (ApplyResult, error) {
	if err := tx.IsWellFormed(); err != nil {
		return ApplyResult{}, err
	}

	l.Lock()
	defer l.Unlock()

	return l.apply(tx)
}

func (l *Ledger) apply(tx *transaction.Transaction) (result ApplyResult, err error) {
	var sequence uint32
	if sequence, err = getSequence(l.st); err != nil {
		return
	}

	result = ApplyResult{
		Hash:     tx.Hash(),
		Type:     tx.Type,
		Sequence: sequence,
		Hooks:    []hook.Result{},
	}
	logger := log.New(logging.Ctx{"tx": result.Hash, "type": tx.Type, "sequence": sequence})

	var ts *storage.LevelDBBackend
	if ts, err = l.st.OpenTransaction(); err != nil {
		return
	}

	reject := func(message string) (ApplyResult, error) {
		if err := ts.Discard(); err != nil {
			return ApplyResult{}, err
		}

		result.Accepted = false
		result.Message = message
		result.Emitted = nil
		logger.Debug("transaction rejected", "message", message)

		return result, nil
	}

	executor := hook.NewExecutor(&view{l: l, st: ts, sequence: sequence})

	var emitted []*transaction.Transaction
	for _, id := range hookAccounts(tx) {
		var slots hook.Slots
		if slots, err = getSlots(ts, id); err != nil {
			ts.Discard()
			return
		}

		for slot, hash := range slots {
			if hash.IsZero() {
				continue
			}

			var definition hook.Definition
			if definition, err = l.definition(ts, hash); err != nil {
				ts.Discard()
				return
			}
			if !definition.IsNative() || !hook.HasHook(definition.Program) {
				logger.Debug("hook has no program; skipped", "account", id, "slot", slot, "hook-hash", hash)
				continue
			}

			var r hook.Result
			if r, err = executor.Execute(ts, id, definition, tx); err != nil {
				ts.Discard()
				return
			}

			result.Hooks = append(result.Hooks, r)
			if !r.Accepted() {
				return reject(r.Message)
			}
			emitted = append(emitted, r.Emitted...)
		}
	}

	if tx.Type == transaction.TypeSetHook {
		if err = applySetHook(l, ts, tx); err != nil {
			if errors.HookDefinitionNotFound.Is(err) {
				err = nil
				return reject(errors.HookDefinitionNotFound.Message)
			}
			ts.Discard()
			return
		}
	}

	for _, etx := range emitted {
		if err = queueEmitted(ts, etx); err != nil {
			ts.Discard()
			return
		}
		result.Emitted = append(result.Emitted, etx.Hash())
	}

	if err = ts.Commit(); err != nil {
		return
	}

	result.Accepted = true
	metrics.Ledger.AddAppliedTx(tx.Type.String())
	logger.Debug("transaction applied", "hooks", len(result.Hooks), "emitted", len(result.Emitted))

	return
}

func applySetHook(l *Ledger, ts *storage.LevelDBBackend, tx *transaction.Transaction) error {
	slots, err := getSlots(ts, tx.Account)
	if err != nil {
		return err
	}

	for i, entry := range tx.Hooks {
		switch entry.Operation {
		case transaction.HookInstall:
			if _, err = l.definition(ts, entry.HookHash); err != nil {
				return err
			}
			slots[i] = entry.HookHash
		case transaction.HookDelete:
			slots[i] = common.ZeroHash
		}
	}

	return setSlots(ts, tx.Account, slots)
}
