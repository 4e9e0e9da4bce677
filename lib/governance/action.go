package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

// Relay emits the vote to the L1 table as an `Invoke` to genesis carrying
// `T` and `V`.
func Relay(checker *VoteChecker) error {
	ctx := checker.Context

	tx := ctx.Builder().Invoke(
		ctx.HookAccount,
		checker.Config.Genesis,
		transaction.NewHookParameter(ParamTopic, checker.Topic.Bytes()),
		transaction.NewHookParameter(ParamValue, checker.Value[:]),
	)

	id, err := ctx.Emit(tx)
	if err != nil {
		checker.Log.Error("failed to emit L1 vote", "error", err)
		return errors.GovernanceRelayEmitFailed
	}

	metrics.Governance.AddAction(metrics.ActionRelay)
	checker.Log.Debug("emitted L1 vote", "emitted", id)

	return StopRelayed
}

// ActionHook emits a `SetHook` which installs the voted hook hash at the
// slot of the topic, or deletes the slot when the value is all zero.
func ActionHook(checker *VoteChecker) error {
	ctx := checker.Context
	slot := checker.Topic.Index
	hash := common.Hash(checker.Value)

	slots, err := ctx.Ledger.HookSlots(ctx.HookAccount)
	if err != nil {
		return err
	}
	if existing := slots[slot]; !existing.IsZero() && existing == hash {
		return StopHookAlreadySame
	}

	if !hash.IsZero() {
		var exists bool
		if exists, err = ctx.Ledger.HookDefinitionExists(hash); err != nil {
			return err
		} else if !exists {
			return errors.GovernanceHookHashNotFound
		}
	}

	tx, err := ctx.Builder().InstallOrDeleteHook(ctx.HookAccount, slot, hash)
	if err != nil {
		return err
	}

	id, err := ctx.Emit(tx)
	if err != nil {
		checker.Log.Error("failed to emit SetHook", "error", err)
		return errors.GovernanceHookEmitFailed
	}

	if hash.IsZero() {
		metrics.Governance.AddAction(metrics.ActionHookDelete)
	} else {
		metrics.Governance.AddAction(metrics.ActionHookInstall)
	}
	checker.Log.Debug("hook actioned", "slot", slot, "hook-hash", hash, "emitted", id)

	return StopHookActioned
}
