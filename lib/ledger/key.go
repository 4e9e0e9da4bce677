package ledger

import (
	"fmt"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
)

const (
	KeyPrefixSequence   = "ledger-sequence"
	KeyPrefixEmitIndex  = "ledger-emit-index"
	KeyPrefixHooks      = "ledger-hooks-"
	KeyPrefixDefinition = "ledger-definition-"
	KeyPrefixEmitted    = "ledger-emitted-"
)

func GetHooksKey(id account.ID) string {
	return KeyPrefixHooks + id.Hex()
}

func GetDefinitionKey(hash common.Hash) string {
	return KeyPrefixDefinition + hash.String()
}

// GetEmittedKey orders the queue by the first ledger the transaction is
// valid in and then by emission.
func GetEmittedKey(firstLedgerSequence uint32, index uint64) string {
	return fmt.Sprintf("%s%010d-%020d", KeyPrefixEmitted, firstLedgerSequence, index)
}
