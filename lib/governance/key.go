package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
)

type RecordKind byte

const (
	RecordKindVote  RecordKind = 'V'
	RecordKindTally RecordKind = 'C'
)

// MemberCountKey holds the number of members of the table.
var MemberCountKey = []byte("MC")

// MemberKey is the key of the membership marker of id; the state key is the
// account id left padded to 32 bytes.
func MemberKey(id account.ID) []byte {
	return id.Bytes()
}

// VoteKey is the key of the current vote of a member on a topic and layer.
type VoteKey struct {
	Topic  Topic
	Layer  Layer
	Member account.ID
}

// Bytes is
//
//	[0]      'V'
//	[1]      topic kind
//	[2]      topic index
//	[3]      layer
//	[4:12]   zero
//	[12:32]  member account id
func (k VoteKey) Bytes() []byte {
	b := make([]byte, hook.StateKeyLength)
	b[0] = byte(RecordKindVote)
	b[1] = byte(k.Topic.Kind)
	b[2] = k.Topic.Index
	b[3] = byte(k.Layer)
	copy(b[hook.StateKeyLength-account.IDLength:], k.Member.Bytes())

	return b
}

// TallyKey is the key of the vote count of one value on a topic and layer.
type TallyKey struct {
	Topic Topic
	Layer Layer
	Value [VoteValueLength]byte
}

// Bytes is
//
//	[0]      'C'
//	[1]      topic kind
//	[2]      topic index
//	[3]      layer
//	[4:32]   Value[4:32]
//
// The first 4 bytes of the value are not part of the key, so two values
// which differ only there share a tally.
func (k TallyKey) Bytes() []byte {
	b := make([]byte, hook.StateKeyLength)
	copy(b, k.Value[:])
	b[0] = byte(RecordKindTally)
	b[1] = byte(k.Topic.Kind)
	b[2] = k.Topic.Index
	b[3] = byte(k.Layer)

	return b
}

// ParseTallyKey is the reverse of `TallyKey.Bytes`; the first 4 bytes of the
// returned value are zero.
func ParseTallyKey(b []byte) (TallyKey, bool) {
	if len(b) != hook.StateKeyLength || RecordKind(b[0]) != RecordKindTally {
		return TallyKey{}, false
	}

	k := TallyKey{
		Topic: Topic{Kind: TopicKind(b[1]), Index: b[2]},
		Layer: Layer(b[3]),
	}
	copy(k.Value[4:], b[4:])

	return k, true
}

// ParseVoteKey is the reverse of `VoteKey.Bytes`.
func ParseVoteKey(b []byte) (VoteKey, bool) {
	if len(b) != hook.StateKeyLength || RecordKind(b[0]) != RecordKindVote {
		return VoteKey{}, false
	}

	member, err := account.NewIDFromBytes(b[hook.StateKeyLength-account.IDLength:])
	if err != nil {
		return VoteKey{}, false
	}

	return VoteKey{
		Topic:  Topic{Kind: TopicKind(b[1]), Index: b[2]},
		Layer:  Layer(b[3]),
		Member: member,
	}, true
}
