package hook

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/test"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

func init() {
	SetLogging(common.DefaultLogLevel, test.LogHandler())
}

var (
	testHookAccount = account.NewTestID("hook")
	testSender      = account.NewTestID("sender")
)

func testPayment() *transaction.Transaction {
	return transaction.NewPayment(
		testSender,
		testHookAccount,
		transaction.NewNativeAmount(1),
		transaction.NewHookParameter("K", []byte("v")),
	)
}

func TestStateKey(t *testing.T) {
	k, err := NewStateKey([]byte("MC"))
	require.NoError(t, err)
	require.Equal(t, byte('M'), k[30])
	require.Equal(t, byte('C'), k[31])
	require.True(t, common.IsZeroBytes(k[:30]))

	_, err = NewStateKey(make([]byte, 33))
	require.True(t, errors.HookStateKeyTooLong.Is(err))
}

func TestStorageState(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	state := NewStorageState(st, testHookAccount)
	other := NewStorageState(st, testSender)

	_, found, err := state.Get([]byte("MC"))
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, state.Set([]byte("MC"), []byte{3}))

	v, found, err := state.Get([]byte("MC"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte{3}, v)

	// "MC" and its padded form are the same key
	padded, _ := NewStateKey([]byte("MC"))
	v, found, err = state.Get(padded[:])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte{3}, v)

	// namespaces are per account
	_, found, err = other.Get([]byte("MC"))
	require.NoError(t, err)
	require.False(t, found)

	var walked int
	err = WalkState(st, testHookAccount, func(key [StateKeyLength]byte, value []byte) (bool, error) {
		walked++
		require.Equal(t, padded, key)
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, walked)

	// empty value deletes; deleting again is fine
	require.NoError(t, state.Set([]byte("MC"), nil))
	require.NoError(t, state.Set([]byte("MC"), nil))
	_, found, err = state.Get([]byte("MC"))
	require.NoError(t, err)
	require.False(t, found)
}

func TestContextEmit(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	ledger := NewStaticLedger()
	hookHash := Hash([]byte("test"))
	tx := testPayment()
	ctx := NewContext(testHookAccount, hookHash, tx, NewStorageState(st, testHookAccount), ledger, nil)

	invoke := ctx.Builder().Invoke(testHookAccount, testSender)

	_, err := ctx.Emit(invoke)
	require.True(t, errors.HookEmitNotReserved.Is(err))

	require.NoError(t, ctx.Reserve(1))
	require.True(t, errors.HookReserveAlreadySet.Is(ctx.Reserve(1)))

	// not built by the builder
	_, err = ctx.Emit(transaction.NewInvoke(testHookAccount, testSender))
	require.True(t, errors.HookEmitFailed.Is(err))

	id, err := ctx.Emit(invoke)
	require.NoError(t, err)
	require.Equal(t, invoke.Hash(), id)
	require.Equal(t, 1, len(ctx.Emitted()))

	require.Equal(t, uint32(1), invoke.EmitDetails.EmitGeneration)
	require.Equal(t, tx.Hash(), invoke.EmitDetails.EmitParentTxnID)
	require.Equal(t, hookHash, invoke.EmitDetails.EmitHookHash)
	require.Equal(t, ledger.Sequence+1, invoke.FirstLedgerSequence)
	require.Equal(t, ledger.Sequence+5, invoke.LastLedgerSequence)
	require.Equal(t, ledger.Fee, invoke.Fee)

	// the nonce changes for every emitted transaction
	second := ctx.Builder().Invoke(testHookAccount, testSender)
	require.NotEqual(t, invoke.EmitDetails.EmitNonce, second.EmitDetails.EmitNonce)

	_, err = ctx.Emit(second)
	require.True(t, errors.HookEmitReserveExceeded.Is(err))
}

func TestExecutor(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	AddHook("test-accept", func(ctx *Context) error {
		if err := ctx.State.Set([]byte("k"), []byte("accepted")); err != nil {
			return err
		}
		if err := ctx.Reserve(1); err != nil {
			return err
		}
		if _, err := ctx.Emit(ctx.Builder().Invoke(ctx.HookAccount, ctx.Transaction.Account)); err != nil {
			return err
		}
		return common.NewCheckerStop("done")
	})
	AddHook("test-rollback", func(ctx *Context) error {
		if err := ctx.State.Set([]byte("k"), []byte("rolled back")); err != nil {
			return err
		}
		if err := ctx.Reserve(1); err != nil {
			return err
		}
		if _, err := ctx.Emit(ctx.Builder().Invoke(ctx.HookAccount, ctx.Transaction.Account)); err != nil {
			return err
		}
		return errors.GovernanceNotMember
	})
	AddHook("test-panic", func(ctx *Context) error {
		var m map[string]int
		m["a"] = 1
		return nil
	})
	require.True(t, HasHook("test-accept"))

	ex := NewExecutor(NewStaticLedger())
	state := NewStorageState(st, testHookAccount)

	{ // accept commits the state and keeps the emitted transactions
		result, err := ex.Execute(st, testHookAccount, NewNativeDefinition("test-accept"), testPayment())
		require.NoError(t, err)
		require.True(t, result.Accepted())
		require.Equal(t, "done", result.Message)
		require.Equal(t, 1, len(result.Emitted))
		require.NotEmpty(t, result.InvocationID)

		v, found, err := state.Get([]byte("k"))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte("accepted"), v)
	}

	{ // rollback discards the state and the emitted transactions
		result, err := ex.Execute(st, testHookAccount, NewNativeDefinition("test-rollback"), testPayment())
		require.NoError(t, err)
		require.False(t, result.Accepted())
		require.Equal(t, errors.GovernanceNotMember.Code, result.Code)
		require.Equal(t, errors.GovernanceNotMember.Message, result.Message)
		require.Empty(t, result.Emitted)

		v, _, err := state.Get([]byte("k"))
		require.NoError(t, err)
		require.Equal(t, []byte("accepted"), v)
	}

	{ // panic rolls back
		result, err := ex.Execute(st, testHookAccount, NewNativeDefinition("test-panic"), testPayment())
		require.NoError(t, err)
		require.Equal(t, Rollback, result.Outcome)
		require.Equal(t, errors.HookProgramAborted.Code, result.Code)
	}

	{ // unknown program
		_, err := ex.Execute(st, testHookAccount, NewNativeDefinition("unknown"), testPayment())
		require.True(t, errors.HookNotRegistered.Is(err))

		_, err = ex.Execute(st, testHookAccount, NewDefinition([]byte{0x00, 0x61, 0x73, 0x6d}), testPayment())
		require.True(t, errors.HookNotRegistered.Is(err))
	}
}

func TestHash(t *testing.T) {
	d := NewNativeDefinition("test-accept")
	require.Equal(t, common.SHA512Half([]byte("test-accept")), d.HookHash)
	require.True(t, d.IsNative())
	require.False(t, NewDefinition([]byte("code")).IsNative())
}
