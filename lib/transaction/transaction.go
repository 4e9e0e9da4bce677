package transaction

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

// EmitDetails marks a transaction as emitted by a hook.
type EmitDetails struct {
	EmitGeneration  uint32      `json:"emit_generation"`
	EmitBurden      uint64      `json:"emit_burden"`
	EmitParentTxnID common.Hash `json:"emit_parent_txn_id"`
	EmitNonce       common.Hash `json:"emit_nonce"`
	EmitHookHash    common.Hash `json:"emit_hook_hash"`
}

type Transaction struct {
	Type                TxType         `json:"TransactionType"`
	Flags               uint32         `json:"Flags"`
	Account             account.ID     `json:"Account"`
	Destination         *account.ID    `json:"Destination,omitempty"`
	Amount              *Amount        `json:"Amount,omitempty"`
	Fee                 uint64         `json:"Fee"`
	Sequence            uint32         `json:"Sequence"`
	FirstLedgerSequence uint32         `json:"FirstLedgerSequence,omitempty"`
	LastLedgerSequence  uint32         `json:"LastLedgerSequence,omitempty"`
	SigningPubKey       HexBytes       `json:"SigningPubKey"`
	HookParameters      HookParameters `json:"HookParameters,omitempty"`
	Hooks               []HookEntry    `json:"Hooks,omitempty"`
	EmitDetails         *EmitDetails   `json:"EmitDetails,omitempty"`
}

func NewPayment(source, destination account.ID, amount *Amount, params ...HookParameter) *Transaction {
	return &Transaction{
		Type:           TypePayment,
		Account:        source,
		Destination:    &destination,
		Amount:         amount,
		HookParameters: params,
	}
}

func NewInvoke(source, destination account.ID, params ...HookParameter) *Transaction {
	return &Transaction{
		Type:           TypeInvoke,
		Account:        source,
		Destination:    &destination,
		HookParameters: params,
	}
}

func NewSetHook(source account.ID, hooks []HookEntry) *Transaction {
	return &Transaction{
		Type:    TypeSetHook,
		Account: source,
		Hooks:   hooks,
	}
}

// Hash is the transaction id.
func (tx Transaction) Hash() common.Hash {
	return common.MustMakeObjectHash(tx)
}

func (tx Transaction) IsEmitted() bool {
	return tx.EmitDetails != nil
}

func (tx Transaction) HasDestination() bool {
	return tx.Destination != nil
}

// Parameter returns the value of hook parameter name.
func (tx Transaction) Parameter(name string) ([]byte, bool) {
	return tx.HookParameters.Get(name)
}

func (tx Transaction) IsWellFormed() error {
	if !tx.Type.IsKnown() {
		return errors.UnknownTransactionType.Clone().SetData("type", uint16(tx.Type))
	}

	switch tx.Type {
	case TypePayment:
		if tx.Destination == nil {
			return errors.TransactionMissingField.Clone().SetData("field", "Destination")
		}
		if tx.Amount == nil {
			return errors.TransactionMissingField.Clone().SetData("field", "Amount")
		}
		if tx.Amount.Value < 1 {
			return errors.TransactionInvalidAmount
		}
	case TypeInvoke:
		if tx.Amount != nil {
			return errors.TransactionInvalidAmount
		}
	case TypeSetHook:
		if len(tx.Hooks) < 1 || len(tx.Hooks) > HookMax {
			return errors.TransactionMissingField.Clone().SetData("field", "Hooks")
		}
		for _, entry := range tx.Hooks {
			if entry.Operation == HookInstall && entry.HookHash.IsZero() {
				return errors.InvalidHash.Clone().SetData("field", "HookHash")
			}
		}
	}

	return nil
}

func (tx Transaction) Serialize() (encoded []byte, err error) {
	return json.Marshal(tx)
}

func (tx Transaction) String() string {
	encoded, _ := json.MarshalIndent(tx, "", "  ")
	return string(encoded)
}

// HexBytes is written as upper case hex in JSON.
type HexBytes []byte

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(b)))
}

func (b *HexBytes) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err = json.Unmarshal(data, &s); err != nil {
		return
	}

	*b, err = common.DecodeHex(s)
	return
}
