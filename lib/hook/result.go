package hook

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

type Outcome string

const (
	Accept   Outcome = "accept"
	Rollback Outcome = "rollback"
)

// Result is the outcome of one invocation. Rolled back invocations never
// carry emitted transactions.
type Result struct {
	InvocationID string                     `json:"invocation_id"`
	HookAccount  account.ID                 `json:"hook_account"`
	HookHash     common.Hash                `json:"hook_hash"`
	Program      string                     `json:"program"`
	Outcome      Outcome                    `json:"outcome"`
	Message      string                     `json:"message"`
	Code         uint                       `json:"code,omitempty"`
	Emitted      []*transaction.Transaction `json:"emitted,omitempty"`
}

func (r Result) Accepted() bool {
	return r.Outcome == Accept
}
