package ledger

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

func queueEmitted(st *storage.LevelDBBackend, tx *transaction.Transaction) error {
	var index uint64
	if err := st.Get(KeyPrefixEmitIndex, &index); err != nil && !errors.StorageRecordDoesNotExist.Is(err) {
		return err
	}

	encoded, err := transaction.Encode(tx)
	if err != nil {
		return err
	}

	if err = st.PutRaw([]byte(GetEmittedKey(tx.FirstLedgerSequence, index)), encoded); err != nil {
		return err
	}

	return st.Set(KeyPrefixEmitIndex, index+1)
}

type queuedTx struct {
	key []byte
	tx  *transaction.Transaction
}

func walkEmitted(st *storage.LevelDBBackend, f func(queuedTx) (bool, error)) error {
	return st.Walk([]byte(KeyPrefixEmitted), func(k, v []byte) (bool, error) {
		tx, err := transaction.Decode(v)
		if err != nil {
			return false, err
		}

		key := make([]byte, len(k))
		copy(key, k)

		return f(queuedTx{key: key, tx: tx})
	})
}

// Emitted lists the emitted transactions waiting for a ledger.
func (l *Ledger) Emitted() ([]*transaction.Transaction, error) {
	txs := []*transaction.Transaction{}
	err := walkEmitted(l.st, func(q queuedTx) (bool, error) {
		txs = append(txs, q.tx)
		return true, nil
	})

	return txs, err
}

type CloseResult struct {
	Sequence uint32        `json:"ledger_sequence"`
	Applied  []ApplyResult `json:"applied"`
	Expired  []common.Hash `json:"expired,omitempty"`
}

// Close closes the open ledger and applies the emitted transactions which
// became valid in the new one. Transactions emitted while doing so wait for
// the next close.
func (l *Ledger) Close() (result CloseResult, err error) {
	l.Lock()
	defer l.Unlock()

	var sequence uint32
	if sequence, err = getSequence(l.st); err != nil {
		return
	}
	sequence++
	if err = l.st.Set(KeyPrefixSequence, sequence); err != nil {
		return
	}

	result = CloseResult{Sequence: sequence, Applied: []ApplyResult{}}

	var due []queuedTx
	err = walkEmitted(l.st, func(q queuedTx) (bool, error) {
		if q.tx.FirstLedgerSequence > sequence {
			return false, nil
		}
		due = append(due, q)
		return true, nil
	})
	if err != nil {
		return
	}

	for _, q := range due {
		if err = l.st.Remove(q.key); err != nil {
			return
		}

		if q.tx.LastLedgerSequence < sequence {
			log.Debug("emitted transaction expired", "tx", q.tx.Hash(), "last-ledger", q.tx.LastLedgerSequence)
			result.Expired = append(result.Expired, q.tx.Hash())
			continue
		}

		var applied ApplyResult
		if applied, err = l.apply(q.tx); err != nil {
			return
		}
		result.Applied = append(result.Applied, applied)
	}

	metrics.Ledger.SetSequence(sequence)
	if emitted, err := l.Emitted(); err == nil {
		metrics.Ledger.SetEmittedQueued(len(emitted))
	}

	log.Debug("ledger closed", "sequence", sequence, "applied", len(result.Applied), "expired", len(result.Expired))

	return
}
