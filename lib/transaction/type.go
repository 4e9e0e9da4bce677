package transaction

import (
	"encoding/json"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

type TxType uint16

const (
	TypePayment TxType = 0
	TypeSetHook TxType = 22
	TypeInvoke  TxType = 99
)

var txTypeNames = map[TxType]string{
	TypePayment: "Payment",
	TypeSetHook: "SetHook",
	TypeInvoke:  "Invoke",
}

func ParseTxType(s string) (TxType, error) {
	for t, name := range txTypeNames {
		if name == s {
			return t, nil
		}
	}

	return 0, errors.UnknownTransactionType.Clone().SetData("type", s)
}

func (t TxType) IsKnown() bool {
	_, found := txTypeNames[t]
	return found
}

func (t TxType) String() string {
	if name, found := txTypeNames[t]; found {
		return name
	}

	return "Unknown"
}

func (t TxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TxType) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return
	}

	*t, err = ParseTxType(s)
	return
}

func (t TxType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *TxType) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var s string
	if err = unmarshal(&s); err != nil {
		return
	}

	*t, err = ParseTxType(s)
	return
}

const (
	// FlagCanonical is set on every transaction built by hooks.
	FlagCanonical uint32 = 0x80000000
)
