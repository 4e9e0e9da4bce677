package transaction

import (
	"github.com/vmihailenco/msgpack"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

// Encode is the host's wire encoding of a transaction, used for the emitted
// transaction queue.
func Encode(tx *Transaction) ([]byte, error) {
	b, err := msgpack.Marshal(tx)
	if err != nil {
		return nil, errors.TransactionEncodeFailed.Clone().SetData("error", err.Error())
	}

	return b, nil
}

func Decode(b []byte) (*Transaction, error) {
	var tx Transaction
	if err := msgpack.Unmarshal(b, &tx); err != nil {
		return nil, errors.TransactionEncodeFailed.Clone().SetData("error", err.Error())
	}

	return &tx, nil
}
