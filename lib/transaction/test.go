package transaction

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
)

// StaticEmitEnvironment is an `EmitEnvironment` with fixed values.
type StaticEmitEnvironment struct {
	Sequence uint32
	Details  EmitDetails
	Fee      uint64
}

func (e StaticEmitEnvironment) LedgerSequence() uint32 {
	return e.Sequence
}

func (e StaticEmitEnvironment) EmitDetails() EmitDetails {
	return e.Details
}

func (e StaticEmitEnvironment) FeeBase(*Transaction) uint64 {
	return e.Fee
}

func NewTestEmitEnvironment() StaticEmitEnvironment {
	return StaticEmitEnvironment{
		Sequence: 100,
		Details: EmitDetails{
			EmitGeneration:  1,
			EmitBurden:      1,
			EmitParentTxnID: common.SHA512Half([]byte("parent")),
			EmitNonce:       common.SHA512Half([]byte("nonce")),
		},
		Fee: 12,
	}
}
