package governance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
)

func TestTableSetup(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	table := NewTable(hook.NewStorageState(st, DefaultGenesis))

	_, found, err := table.MemberCount()
	require.NoError(t, err)
	require.False(t, found)

	members := testMembers(3)
	require.NoError(t, table.Setup(members))

	count, found, err := table.MemberCount()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(3), count)

	for _, m := range members {
		isMember, err := table.IsMember(m)
		require.NoError(t, err)
		require.True(t, isMember)
	}
	isMember, err := table.IsMember(account.NewTestID("outsider"))
	require.NoError(t, err)
	require.False(t, isMember)

	require.True(t, errors.GovernanceInvalidConfig.Is(table.Setup(nil)))
	require.True(t, errors.GovernanceInvalidConfig.Is(table.Setup([]account.ID{members[0], members[0]})))
}

func TestTableMemberCountBigEndian(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	state := hook.NewStorageState(st, DefaultGenesis)
	require.NoError(t, state.Set(MemberCountKey, []byte{0x01, 0x02}))

	count, found, err := NewTable(state).MemberCount()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(0x0102), count)

	require.NoError(t, state.Set(MemberCountKey, make([]byte, 9)))
	_, _, err = NewTable(state).MemberCount()
	require.True(t, errors.GovernanceAssertionFailed.Is(err))
}

func TestTableCast(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	table := NewTable(hook.NewStorageState(st, DefaultGenesis))
	members := testMembers(3)
	topic := NewHookTopic(0)
	a := common.SHA512Half([]byte("a"))
	b := common.SHA512Half([]byte("b"))

	tally := func(v common.Hash) uint8 {
		votes, err := table.Tally(TallyKey{Topic: topic, Layer: LayerPrimary, Value: v})
		require.NoError(t, err)
		return votes
	}

	cast, err := table.Cast(members[0], topic, LayerPrimary, a)
	require.NoError(t, err)
	require.False(t, cast.HadPrevious)
	require.Equal(t, uint8(1), cast.Votes)

	cast, err = table.Cast(members[1], topic, LayerPrimary, a)
	require.NoError(t, err)
	require.Equal(t, uint8(2), cast.Votes)

	{ // idempotence
		_, err = table.Cast(members[1], topic, LayerPrimary, a)
		require.Equal(t, StopAlreadyVoted, err)
		require.Equal(t, uint8(2), tally(a))
	}

	{ // no double counting; the vote moves
		cast, err = table.Cast(members[1], topic, LayerPrimary, b)
		require.NoError(t, err)
		require.True(t, cast.HadPrevious)
		require.Equal(t, a, common.Hash(cast.Previous))
		require.Equal(t, uint8(1), cast.Votes)
		require.Equal(t, uint8(1), tally(a))
		require.Equal(t, uint8(1), tally(b))
	}

	{ // tally entry is removed at zero
		_, err = table.Cast(members[0], topic, LayerPrimary, b)
		require.NoError(t, err)
		require.Equal(t, uint8(0), tally(a))

		_, found, err := hook.NewStorageState(st, DefaultGenesis).Get(TallyKey{Topic: topic, Layer: LayerPrimary, Value: a}.Bytes())
		require.NoError(t, err)
		require.False(t, found)
	}

	{ // layers are separate
		cast, err = table.Cast(members[0], topic, LayerLocal, b)
		require.NoError(t, err)
		require.False(t, cast.HadPrevious)
		require.Equal(t, uint8(1), cast.Votes)
		require.Equal(t, uint8(2), tally(b))
	}

	{ // conservation: the tallies of a topic and layer sum to the voters
		tallies, err := Tallies(st, DefaultGenesis, topic, LayerPrimary)
		require.NoError(t, err)
		votes, err := Votes(st, DefaultGenesis, topic, LayerPrimary)
		require.NoError(t, err)

		var sum int
		for _, r := range tallies {
			sum += int(r.Votes)
		}
		require.Equal(t, len(votes), sum)
		require.Equal(t, 2, len(votes))
	}
}

func TestTableCastMissingTally(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	state := hook.NewStorageState(st, DefaultGenesis)
	table := NewTable(state)
	member := account.NewTestID("member")
	topic := NewHookTopic(1)
	a := common.SHA512Half([]byte("a"))

	_, err := table.Cast(member, topic, LayerPrimary, a)
	require.NoError(t, err)

	// break the tally of the previous vote
	require.NoError(t, state.Set(TallyKey{Topic: topic, Layer: LayerPrimary, Value: a}.Bytes(), nil))

	_, err = table.Cast(member, topic, LayerPrimary, common.SHA512Half([]byte("b")))
	require.True(t, errors.GovernanceAssertionFailed.Is(err))
}

func TestTableCastTallyOverflow(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	state := hook.NewStorageState(st, DefaultGenesis)
	table := NewTable(state)
	topic := NewHookTopic(2)
	value := common.SHA512Half([]byte("full"))
	key := TallyKey{Topic: topic, Layer: LayerPrimary, Value: value}

	require.NoError(t, state.Set(key.Bytes(), []byte{254}))
	cast, err := table.Cast(account.NewTestID("member-254"), topic, LayerPrimary, value)
	require.NoError(t, err)
	require.Equal(t, uint8(255), cast.Votes)

	_, err = table.Cast(account.NewTestID("member-255"), topic, LayerPrimary, value)
	require.True(t, errors.GovernanceAssertionFailed.Is(err))

	// the failed cast left the tally alone
	votes, err := table.Tally(key)
	require.NoError(t, err)
	require.Equal(t, uint8(255), votes)
}

func testMembers(n int) []account.ID {
	members := make([]account.ID, n)
	for i := range members {
		members[i] = account.NewTestID(string(rune('a'+i)) + "-member")
	}

	return members
}
