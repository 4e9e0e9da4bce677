package hook

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

type Executor struct {
	Ledger Ledger
}

func NewExecutor(ledger Ledger) *Executor {
	return &Executor{Ledger: ledger}
}

// Execute runs the program of definition on hookAccount for tx. The writes
// of the program go to a journal over st which is committed when the
// program accepts and discarded when it rolls back.
func (ex *Executor) Execute(st *storage.LevelDBBackend, hookAccount account.ID, definition Definition, tx *transaction.Transaction) (Result, error) {
	program, found := GetHook(definition.Program)
	if !definition.IsNative() || !found {
		return Result{}, errors.HookNotRegistered.Clone().SetData("program", definition.Program)
	}

	result := Result{
		InvocationID: uuid.New().String(),
		HookAccount:  hookAccount,
		HookHash:     definition.HookHash,
		Program:      definition.Program,
	}

	logger := log.New(
		"invocation", result.InvocationID,
		"hook-account", hookAccount,
		"program", definition.Program,
		"tx", tx.Hash(),
		"sender", tx.Account,
	)

	journal := st.OpenJournal()
	ctx := NewContext(hookAccount, definition.HookHash, tx, NewStorageState(journal, hookAccount), ex.Ledger, logger)
	ctx.InvocationID = result.InvocationID

	err := run(program, ctx)
	if err == nil {
		result.Outcome = Accept
	} else if stop, ok := common.IsCheckerStop(err); ok {
		result.Outcome = Accept
		result.Message = stop.Message
	} else {
		result.Outcome = Rollback
		result.Code = errors.Code(err)
		result.Message = err.Error()
		if e, ok := err.(*errors.Error); ok {
			result.Message = e.Message
		}
	}

	if result.Accepted() {
		if err = journal.Commit(); err != nil {
			metrics.Hook.AddInvocation(definition.Program, metrics.OutcomeError)
			return Result{}, err
		}
		result.Emitted = ctx.Emitted()
		metrics.Hook.AddEmitted(definition.Program, len(result.Emitted))
		logger.Debug("accepted", "message", result.Message, "emitted", len(result.Emitted))
	} else {
		if err = journal.Discard(); err != nil {
			metrics.Hook.AddInvocation(definition.Program, metrics.OutcomeError)
			return Result{}, err
		}
		logger.Debug("rolled back", "message", result.Message, "code", result.Code)
	}

	metrics.Hook.AddInvocation(definition.Program, string(result.Outcome))

	return result, nil
}

func run(program Program, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Log.Error("program aborted", "panic", r)
			err = errors.HookProgramAborted.Clone().SetData("panic", fmt.Sprintf("%v", r))
		}
	}()

	return program(ctx)
}
