package transaction

import (
	"encoding/json"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

// HookMax is the number of hook slots of an account.
const HookMax = 10

type HookOperation uint8

const (
	// HookUntouched leaves the slot as it is.
	HookUntouched HookOperation = iota
	HookInstall
	// HookDelete removes whatever is installed in the slot.
	HookDelete
)

var hookOperationNames = map[HookOperation]string{
	HookUntouched: "untouched",
	HookInstall:   "install",
	HookDelete:    "delete",
}

func (o HookOperation) String() string {
	return hookOperationNames[o]
}

func (o HookOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *HookOperation) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return
	}

	for op, name := range hookOperationNames {
		if name == s {
			*o = op
			return
		}
	}

	return errors.BadRequestParameter.Clone().SetData("hook-operation", s)
}

// HookEntry is one slot of a `SetHook` transaction.
type HookEntry struct {
	Operation HookOperation `json:"operation"`
	HookHash  common.Hash   `json:"hook_hash"`
}

// NewHookEntryFromVote maps a voted hook hash to a slot change: all zero
// means delete.
func NewHookEntryFromVote(hash common.Hash) HookEntry {
	if hash.IsZero() {
		return HookEntry{Operation: HookDelete}
	}

	return HookEntry{Operation: HookInstall, HookHash: hash}
}

// NewHookEntries returns `HookMax` untouched entries except for slot.
func NewHookEntries(slot uint8, entry HookEntry) ([]HookEntry, error) {
	if int(slot) >= HookMax {
		return nil, errors.TransactionInvalidSlot.Clone().SetData("slot", slot)
	}

	entries := make([]HookEntry, HookMax)
	entries[slot] = entry

	return entries, nil
}
