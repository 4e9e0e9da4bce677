package governance

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

type TopicKind byte

const (
	TopicSeat   TopicKind = 'S'
	TopicHook   TopicKind = 'H'
	TopicReward TopicKind = 'R'
)

const (
	TopicLength = 2
	LayerLength = 1
	// VoteValueLength is the size of a vote value; hook topics vote on a
	// hook hash.
	VoteValueLength = 32
)

const (
	ParamTopic = "T"
	ParamLayer = "L"
	ParamValue = "V"
	ParamDebug = "D"
)

// Topic is what members vote on. For hook topics `Index` is the hook slot.
type Topic struct {
	Kind  TopicKind
	Index uint8
}

func NewHookTopic(slot uint8) Topic {
	return Topic{Kind: TopicHook, Index: slot}
}

// ParseTopic parses the `T` parameter. Only the kind is validated here, see
// `Validate`.
func ParseTopic(b []byte) (Topic, error) {
	if len(b) != TopicLength {
		return Topic{}, errors.GovernanceInvalidTopic
	}

	switch kind := TopicKind(b[0]); kind {
	case TopicSeat, TopicHook, TopicReward:
		return Topic{Kind: kind, Index: b[1]}, nil
	default:
		return Topic{}, errors.GovernanceInvalidTopic
	}
}

// ParseTopicString parses the text form, "H3" or "S0".
func ParseTopicString(s string) (Topic, error) {
	if len(s) < 2 {
		return Topic{}, errors.GovernanceInvalidTopic
	}

	index, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil {
		return Topic{}, errors.GovernanceInvalidTopic
	}

	return ParseTopic([]byte{s[0], byte(index)})
}

func (t Topic) Bytes() []byte {
	return []byte{byte(t.Kind), t.Index}
}

func (t Topic) String() string {
	return fmt.Sprintf("%c%d", t.Kind, t.Index)
}

func (t Topic) Validate() error {
	if t.Kind == TopicHook && int(t.Index) >= transaction.HookMax {
		return errors.GovernanceInvalidHookTopic
	}

	return nil
}

// Layer is the table a vote is meant for: `LayerPrimary` is the L1 table,
// `LayerLocal` the L2 table which receives the vote.
type Layer uint8

const (
	LayerPrimary Layer = 1
	LayerLocal   Layer = 2
)

// ParseLayer parses the `L` parameter.
func ParseLayer(b []byte, found bool) (Layer, error) {
	if !found || len(b) != LayerLength {
		return 0, errors.GovernanceMissingLayer
	}

	switch layer := Layer(b[0]); layer {
	case LayerPrimary, LayerLocal:
		return layer, nil
	default:
		return 0, errors.GovernanceInvalidLayer
	}
}

func (l Layer) String() string {
	return strconv.Itoa(int(l))
}

// ParseVoteValue parses the `V` parameter.
func ParseVoteValue(b []byte) ([VoteValueLength]byte, error) {
	var value [VoteValueLength]byte
	if len(b) != VoteValueLength {
		return value, errors.GovernanceInvalidVoteData
	}

	copy(value[:], b)
	return value, nil
}

func (t Topic) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Topic) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return
	}

	*t, err = ParseTopicString(s)
	return
}
