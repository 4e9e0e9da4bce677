package resource

import (
	"github.com/nvellon/hal"

	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
)

type HookSlot struct {
	Slot     int    `json:"slot"`
	HookHash string `json:"hook_hash"`
	Program  string `json:"program,omitempty"`
}

type AccountHooks struct {
	account account.ID
	slots   []HookSlot
}

// NewAccountHooks lists the installed slots; programs maps a hook hash to
// the program it runs.
func NewAccountHooks(id account.ID, slots hook.Slots, programs map[string]string) *AccountHooks {
	a := &AccountHooks{account: id, slots: []HookSlot{}}
	for i, hash := range slots {
		if hash.IsZero() {
			continue
		}

		a.slots = append(a.slots, HookSlot{
			Slot:     i,
			HookHash: hash.String(),
			Program:  programs[hash.String()],
		})
	}

	return a
}

func (a AccountHooks) GetMap() hal.Entry {
	return hal.Entry{
		"account": a.account.Address(),
		"hooks":   a.slots,
	}
}

func (a AccountHooks) Resource() *hal.Resource {
	r := hal.NewResource(a, a.LinkSelf())
	r.AddLink("table", hal.NewLink(replaceVars(URLAccountTable, "{id}", a.account.Address())))

	return r
}

func (a AccountHooks) LinkSelf() string {
	return replaceVars(URLAccountHooks, "{id}", a.account.Address())
}
