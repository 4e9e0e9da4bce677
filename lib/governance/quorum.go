package governance

import (
	"encoding/json"
)

// MinimumQuorum is the least number of votes which can action anything.
const MinimumQuorum = 2

// ThresholdPolicy decides how many votes action a topic at a table of
// `MemberCount` members.
type ThresholdPolicy struct {
	MemberCount uint64
	IsPrimary   bool
}

func NewThresholdPolicy(memberCount uint64, isPrimary bool) ThresholdPolicy {
	return ThresholdPolicy{MemberCount: memberCount, IsPrimary: isPrimary}
}

func floorQuorum(n uint64) uint64 {
	if n < MinimumQuorum {
		return MinimumQuorum
	}

	return n
}

// Q80 is 80% of the members, rounded down.
func (p ThresholdPolicy) Q80() uint64 {
	return floorQuorum(p.MemberCount * 80 / 100)
}

// Q51 is 51% of the members, rounded down.
func (p ThresholdPolicy) Q51() uint64 {
	return floorQuorum(p.MemberCount * 51 / 100)
}

// Q100 is every member.
func (p ThresholdPolicy) Q100() uint64 {
	return floorQuorum(p.MemberCount)
}

// Threshold is the number of votes needed for topic on layer. The L1 table
// and layer 2 votes at an L2 table need 80% for seats and every member for
// anything else; layer 1 votes at an L2 table need 51% to be relayed.
func (p ThresholdPolicy) Threshold(topic Topic, layer Layer) uint64 {
	if p.IsPrimary || layer == LayerLocal {
		if topic.Kind == TopicSeat {
			return p.Q80()
		}
		return p.Q100()
	}

	return p.Q51()
}

func (p ThresholdPolicy) Reached(topic Topic, layer Layer, votes uint8) bool {
	return uint64(votes) >= p.Threshold(topic, layer)
}

func (p ThresholdPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"member_count": p.MemberCount,
		"primary":      p.IsPrimary,
		"q80":          p.Q80(),
		"q51":          p.Q51(),
		"q100":         p.Q100(),
	})
}
