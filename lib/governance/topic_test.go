package governance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

func TestParseTopic(t *testing.T) {
	topic, err := ParseTopic([]byte{'H', 3})
	require.NoError(t, err)
	require.Equal(t, NewHookTopic(3), topic)
	require.Equal(t, "H3", topic.String())
	require.NoError(t, topic.Validate())

	for _, b := range [][]byte{nil, {'H'}, {'H', 1, 2}, {'X', 0}, {'h', 0}} {
		_, err = ParseTopic(b)
		require.True(t, errors.GovernanceInvalidTopic.Is(err), "%v", b)
	}

	// seat and reward topics parse; they are refused later
	topic, err = ParseTopic([]byte{'S', 0})
	require.NoError(t, err)
	require.Equal(t, TopicSeat, topic.Kind)
	topic, err = ParseTopic([]byte{'R', 'R'})
	require.NoError(t, err)
	require.Equal(t, TopicReward, topic.Kind)

	require.NoError(t, NewHookTopic(9).Validate())
	require.True(t, errors.GovernanceInvalidHookTopic.Is(NewHookTopic(10).Validate()))
}

func TestParseTopicString(t *testing.T) {
	topic, err := ParseTopicString("H9")
	require.NoError(t, err)
	require.Equal(t, NewHookTopic(9), topic)

	for _, s := range []string{"", "H", "Hx", "H256", "Z1"} {
		_, err = ParseTopicString(s)
		require.Error(t, err, s)
	}

	b, err := json.Marshal(NewHookTopic(4))
	require.NoError(t, err)
	require.Equal(t, `"H4"`, string(b))

	var decoded Topic
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, NewHookTopic(4), decoded)
}

func TestParseLayer(t *testing.T) {
	layer, err := ParseLayer([]byte{1}, true)
	require.NoError(t, err)
	require.Equal(t, LayerPrimary, layer)

	layer, err = ParseLayer([]byte{2}, true)
	require.NoError(t, err)
	require.Equal(t, LayerLocal, layer)

	_, err = ParseLayer(nil, false)
	require.True(t, errors.GovernanceMissingLayer.Is(err))
	_, err = ParseLayer([]byte{1, 2}, true)
	require.True(t, errors.GovernanceMissingLayer.Is(err))
	_, err = ParseLayer([]byte{3}, true)
	require.True(t, errors.GovernanceInvalidLayer.Is(err))
	_, err = ParseLayer([]byte{0}, true)
	require.True(t, errors.GovernanceInvalidLayer.Is(err))
}

func TestParseVoteValue(t *testing.T) {
	_, err := ParseVoteValue(make([]byte, 31))
	require.True(t, errors.GovernanceInvalidVoteData.Is(err))
	_, err = ParseVoteValue(make([]byte, 33))
	require.True(t, errors.GovernanceInvalidVoteData.Is(err))

	b := make([]byte, 32)
	b[31] = 0xff
	value, err := ParseVoteValue(b)
	require.NoError(t, err)
	require.Equal(t, byte(0xff), value[31])
}
