package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/test"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

func init() {
	SetLogging(common.DefaultLogLevel, test.LogHandler())

	// relayed votes reach the L1 table as `Invoke`
	config, err := governance.NewConfig(governance.DefaultGenesis, transaction.TypePayment, transaction.TypeInvoke)
	if err != nil {
		panic(err)
	}
	governance.Register(config)
}

var (
	genesis     = governance.DefaultGenesis
	newHookCode = []byte("new hook code")
	newHook     = hook.NewDefinition(newHookCode)
)

func newTestLedger(t *testing.T) *Ledger {
	l, err := New(storage.NewTestStorage(), DefaultBaseFee)
	require.NoError(t, err)
	require.NoError(t, l.AddDefinition(newHook))

	return l
}

func testMembers(prefix string, n int) []account.ID {
	members := make([]account.ID, n)
	for i := range members {
		members[i] = account.NewTestID(prefix + string(rune('a'+i)))
	}

	return members
}

func voteTx(member, table account.ID, slot uint8, layer byte, value common.Hash) *transaction.Transaction {
	params := []transaction.HookParameter{
		transaction.NewHookParameter(governance.ParamTopic, governance.NewHookTopic(slot).Bytes()),
		transaction.NewHookParameter(governance.ParamValue, value.Bytes()),
	}
	if layer != 0 {
		params = append(params, transaction.NewHookParameter(governance.ParamLayer, []byte{layer}))
	}

	return transaction.NewPayment(member, table, transaction.NewNativeAmount(1), params...)
}

func TestNew(t *testing.T) {
	st := storage.NewTestStorage()
	l, err := New(st, DefaultBaseFee)
	require.NoError(t, err)

	sequence, err := l.Sequence()
	require.NoError(t, err)
	require.Equal(t, GenesisSequence, sequence)

	require.NoError(t, st.Set(KeyPrefixSequence, uint32(7)))
	l, err = New(st, DefaultBaseFee)
	require.NoError(t, err)
	sequence, err = l.Sequence()
	require.NoError(t, err)
	require.Equal(t, uint32(7), sequence)
}

func TestDefinition(t *testing.T) {
	l := newTestLedger(t)

	definition, err := l.Definition(newHook.HookHash)
	require.NoError(t, err)
	require.Equal(t, newHookCode, definition.CreateCode)

	_, err = l.Definition(hook.Hash([]byte("unknown")))
	require.True(t, errors.HookDefinitionNotFound.Is(err))

	broken := newHook
	broken.CreateCode = []byte("something else")
	require.True(t, errors.InvalidHash.Is(l.AddDefinition(broken)))
}

func TestApplyWithoutHooks(t *testing.T) {
	l := newTestLedger(t)

	tx := transaction.NewPayment(account.NewTestID("a"), account.NewTestID("b"), transaction.NewNativeAmount(100))
	result, err := l.Apply(tx)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Empty(t, result.Hooks)
	require.Equal(t, tx.Hash(), result.Hash)

	_, err = l.Apply(&transaction.Transaction{Type: transaction.TypePayment})
	require.True(t, errors.TransactionMissingField.Is(err))
}

func TestSetHook(t *testing.T) {
	l := newTestLedger(t)
	owner := account.NewTestID("owner")

	entries, err := transaction.NewHookEntries(2, transaction.NewHookEntryFromVote(newHook.HookHash))
	require.NoError(t, err)

	result, err := l.Apply(transaction.NewSetHook(owner, entries))
	require.NoError(t, err)
	require.True(t, result.Accepted)

	slots, err := l.HookSlots(owner)
	require.NoError(t, err)
	require.Equal(t, newHook.HookHash, slots[2])

	// unknown definition
	entries, err = transaction.NewHookEntries(3, transaction.NewHookEntryFromVote(hook.Hash([]byte("unknown"))))
	require.NoError(t, err)
	result, err = l.Apply(transaction.NewSetHook(owner, entries))
	require.NoError(t, err)
	require.False(t, result.Accepted)
	require.Equal(t, errors.HookDefinitionNotFound.Message, result.Message)

	slots, err = l.HookSlots(owner)
	require.NoError(t, err)
	require.True(t, slots[3].IsZero())

	// delete
	entries, err = transaction.NewHookEntries(2, transaction.NewHookEntryFromVote(common.ZeroHash))
	require.NoError(t, err)
	result, err = l.Apply(transaction.NewSetHook(owner, entries))
	require.NoError(t, err)
	require.True(t, result.Accepted)

	slots, err = l.HookSlots(owner)
	require.NoError(t, err)
	require.Equal(t, hook.Slots{}, slots)
}

func TestPrimaryVoteEndToEnd(t *testing.T) {
	l := newTestLedger(t)
	members := testMembers("l1-", 3)

	require.NoError(t, l.Seed(Fixture{
		Programs: []string{governance.ProgramName},
		Accounts: []AccountFixture{
			{Account: genesis, Hooks: map[uint8]string{0: governance.ProgramName}, Members: members},
		},
	}))

	for i, member := range members {
		result, err := l.Apply(voteTx(member, genesis, 3, 0, newHook.HookHash))
		require.NoError(t, err)
		require.True(t, result.Accepted)
		require.Equal(t, 1, len(result.Hooks))

		if i < 2 {
			require.Equal(t, governance.StopNotEnoughVotes.Message, result.Hooks[0].Message)
			require.Empty(t, result.Emitted)
			continue
		}
		require.Equal(t, governance.StopHookActioned.Message, result.Hooks[0].Message)
		require.Equal(t, 1, len(result.Emitted))
	}

	emitted, err := l.Emitted()
	require.NoError(t, err)
	require.Equal(t, 1, len(emitted))

	closed, err := l.Close()
	require.NoError(t, err)
	require.Equal(t, GenesisSequence+1, closed.Sequence)
	require.Equal(t, 1, len(closed.Applied))
	require.True(t, closed.Applied[0].Accepted)
	require.Equal(t, transaction.TypeSetHook, closed.Applied[0].Type)

	slots, err := l.HookSlots(genesis)
	require.NoError(t, err)
	require.Equal(t, governance.Definition().HookHash, slots[0])
	require.Equal(t, newHook.HookHash, slots[3])

	emitted, err = l.Emitted()
	require.NoError(t, err)
	require.Empty(t, emitted)
}

func TestRejectedVote(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Seed(Fixture{
		Programs: []string{governance.ProgramName},
		Accounts: []AccountFixture{
			{Account: genesis, Hooks: map[uint8]string{0: governance.ProgramName}, Members: testMembers("l1-", 3)},
		},
	}))

	result, err := l.Apply(voteTx(account.NewTestID("outsider"), genesis, 3, 0, newHook.HookHash))
	require.NoError(t, err)
	require.False(t, result.Accepted)
	require.Equal(t, errors.GovernanceNotMember.Message, result.Message)
	require.Equal(t, hook.Rollback, result.Hooks[0].Outcome)
}

func TestRelayEndToEnd(t *testing.T) {
	l := newTestLedger(t)

	tables := testMembers("l2-table-", 2)
	localA := testMembers("l2a-", 2)
	localB := testMembers("l2b-", 2)

	require.NoError(t, l.Seed(Fixture{
		Sequence: 50,
		Programs: []string{governance.ProgramName},
		Accounts: []AccountFixture{
			{Account: genesis, Hooks: map[uint8]string{0: governance.ProgramName}, Members: tables},
			{Account: tables[0], Hooks: map[uint8]string{0: governance.ProgramName}, Members: localA},
			{Account: tables[1], Hooks: map[uint8]string{0: governance.ProgramName}, Members: localB},
		},
	}))

	vote := func(member, table account.ID) ApplyResult {
		result, err := l.Apply(voteTx(member, table, 3, 1, newHook.HookHash))
		require.NoError(t, err)
		require.True(t, result.Accepted, result.Message)
		return result
	}

	require.Empty(t, vote(localA[0], tables[0]).Emitted)
	require.Equal(t, 1, len(vote(localA[1], tables[0]).Emitted))
	require.Empty(t, vote(localB[0], tables[1]).Emitted)
	require.Equal(t, 1, len(vote(localB[1], tables[1]).Emitted))

	// the relayed votes reach the L1 table
	closed, err := l.Close()
	require.NoError(t, err)
	require.Equal(t, uint32(51), closed.Sequence)
	require.Equal(t, 2, len(closed.Applied))
	for _, applied := range closed.Applied {
		require.True(t, applied.Accepted, applied.Message)
		require.Equal(t, transaction.TypeInvoke, applied.Type)
		// the L1 hook and the L2 hook on the way out
		require.Equal(t, 2, len(applied.Hooks))
		require.Equal(t, governance.StopOutgoing.Message, applied.Hooks[1].Message)
	}
	require.Equal(t, governance.StopNotEnoughVotes.Message, closed.Applied[0].Hooks[0].Message)
	require.Equal(t, governance.StopHookActioned.Message, closed.Applied[1].Hooks[0].Message)

	// L2 tables are untouched
	for _, table := range tables {
		slots, err := l.HookSlots(table)
		require.NoError(t, err)
		require.True(t, slots[3].IsZero())
	}

	closed, err = l.Close()
	require.NoError(t, err)
	require.Equal(t, 1, len(closed.Applied))
	require.Equal(t, transaction.TypeSetHook, closed.Applied[0].Type)

	slots, err := l.HookSlots(genesis)
	require.NoError(t, err)
	require.Equal(t, newHook.HookHash, slots[3])

	tallies, err := governance.Tallies(l.Storage(), genesis, governance.NewHookTopic(3), governance.LayerPrimary)
	require.NoError(t, err)
	require.Equal(t, 1, len(tallies))
	require.Equal(t, uint8(2), tallies[0].Votes)
}

func TestCloseExpired(t *testing.T) {
	l := newTestLedger(t)

	tx := transaction.NewInvoke(account.NewTestID("a"), account.NewTestID("b"))
	tx.FirstLedgerSequence = 1
	tx.LastLedgerSequence = 1
	tx.EmitDetails = &transaction.EmitDetails{EmitGeneration: 1}
	require.NoError(t, queueEmitted(l.Storage(), tx))

	closed, err := l.Close()
	require.NoError(t, err)
	require.Empty(t, closed.Applied)
	require.Equal(t, []common.Hash{tx.Hash()}, closed.Expired)

	emitted, err := l.Emitted()
	require.NoError(t, err)
	require.Empty(t, emitted)
}
