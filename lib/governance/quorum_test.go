package governance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThresholdPolicy(t *testing.T) {
	cases := []struct {
		members uint64
		q80     uint64
		q51     uint64
		q100    uint64
	}{
		{members: 1, q80: 2, q51: 2, q100: 2},
		{members: 2, q80: 2, q51: 2, q100: 2},
		{members: 3, q80: 2, q51: 2, q100: 3},
		{members: 5, q80: 4, q51: 2, q100: 5},
		{members: 10, q80: 8, q51: 5, q100: 10},
		{members: 20, q80: 16, q51: 10, q100: 20},
	}

	for _, c := range cases {
		p := NewThresholdPolicy(c.members, true)
		require.Equal(t, c.q80, p.Q80(), "members=%d", c.members)
		require.Equal(t, c.q51, p.Q51(), "members=%d", c.members)
		require.Equal(t, c.q100, p.Q100(), "members=%d", c.members)
	}
}

func TestThreshold(t *testing.T) {
	hookTopic := NewHookTopic(0)
	seatTopic := Topic{Kind: TopicSeat, Index: 0}

	primary := NewThresholdPolicy(10, true)
	require.Equal(t, uint64(10), primary.Threshold(hookTopic, LayerPrimary))
	require.Equal(t, uint64(8), primary.Threshold(seatTopic, LayerPrimary))

	local := NewThresholdPolicy(10, false)
	require.Equal(t, uint64(5), local.Threshold(hookTopic, LayerPrimary))
	require.Equal(t, uint64(10), local.Threshold(hookTopic, LayerLocal))
	require.Equal(t, uint64(8), local.Threshold(seatTopic, LayerLocal))

	require.False(t, local.Reached(hookTopic, LayerPrimary, 4))
	require.True(t, local.Reached(hookTopic, LayerPrimary, 5))

	// a single member table never actions
	single := NewThresholdPolicy(1, true)
	require.False(t, single.Reached(hookTopic, LayerPrimary, 1))
}
