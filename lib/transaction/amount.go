package transaction

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
)

// Amount is either native drops, when `Currency` is empty, or an issued
// currency amount.
type Amount struct {
	Value    uint64     `json:"value"`
	Currency string     `json:"currency,omitempty"`
	Issuer   account.ID `json:"issuer,omitempty"`
}

func NewNativeAmount(drops uint64) *Amount {
	return &Amount{Value: drops}
}

func NewIssuedAmount(value uint64, currency string, issuer account.ID) *Amount {
	return &Amount{Value: value, Currency: currency, Issuer: issuer}
}

func (a Amount) IsNative() bool {
	return len(a.Currency) < 1
}
