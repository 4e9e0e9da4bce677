package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
)

const maxMemberCountLength = 8

// Table reads and writes the records of a governance table in the hook
// state of its account.
type Table struct {
	state hook.State
}

func NewTable(state hook.State) Table {
	return Table{state: state}
}

// MemberCount returns false when the table was never set up.
func (t Table) MemberCount() (uint64, bool, error) {
	b, found, err := t.state.Get(MemberCountKey)
	if err != nil || !found {
		return 0, false, err
	}

	if len(b) < 1 || len(b) > maxMemberCountLength {
		return 0, false, errors.GovernanceAssertionFailed.Clone().SetData("member-count", b)
	}

	var count uint64
	for _, c := range b {
		count = count<<8 | uint64(c)
	}

	return count, true, nil
}

func (t Table) IsMember(id account.ID) (bool, error) {
	_, found, err := t.state.Get(MemberKey(id))
	return found, err
}

// Vote returns the current vote of the member.
func (t Table) Vote(key VoteKey) ([VoteValueLength]byte, bool, error) {
	var value [VoteValueLength]byte

	b, found, err := t.state.Get(key.Bytes())
	if err != nil || !found {
		return value, false, err
	}
	if len(b) != VoteValueLength {
		return value, false, errors.GovernanceAssertionFailed.Clone().SetData("vote", b)
	}

	copy(value[:], b)
	return value, true, nil
}

// Tally returns the vote count; 0 when there is no entry.
func (t Table) Tally(key TallyKey) (uint8, error) {
	b, found, err := t.state.Get(key.Bytes())
	if err != nil || !found {
		return 0, err
	}
	if len(b) != 1 {
		return 0, errors.GovernanceAssertionFailed.Clone().SetData("tally", b)
	}

	return b[0], nil
}

func (t Table) setTally(key TallyKey, votes uint8) error {
	if votes == 0 {
		return t.state.Set(key.Bytes(), nil)
	}

	return t.state.Set(key.Bytes(), []byte{votes})
}

// Cast is the result of `Table.Cast`.
type Cast struct {
	Previous    [VoteValueLength]byte
	HadPrevious bool
	// Votes is the count of the new value after the vote.
	Votes uint8
}

// Cast records the vote of member and moves it from the tally of the
// previous value to the tally of the new one. Voting again the same value
// is a `common.CheckerStop`.
func (t Table) Cast(member account.ID, topic Topic, layer Layer, value [VoteValueLength]byte) (cast Cast, err error) {
	voteKey := VoteKey{Topic: topic, Layer: layer, Member: member}

	if cast.Previous, cast.HadPrevious, err = t.Vote(voteKey); err != nil {
		return
	}
	if cast.HadPrevious && cast.Previous == value {
		err = StopAlreadyVoted
		return
	}

	if err = t.state.Set(voteKey.Bytes(), value[:]); err != nil {
		return
	}

	if cast.HadPrevious {
		previous := TallyKey{Topic: topic, Layer: layer, Value: cast.Previous}

		var votes uint8
		if votes, err = t.Tally(previous); err != nil {
			return
		}
		if votes < 1 {
			err = errors.GovernanceAssertionFailed.Clone().SetData("tally", "previous value has no votes")
			return
		}
		if err = t.setTally(previous, votes-1); err != nil {
			return
		}
	}

	current := TallyKey{Topic: topic, Layer: layer, Value: value}
	var votes uint8
	if votes, err = t.Tally(current); err != nil {
		return
	}
	if votes == 255 {
		err = errors.GovernanceAssertionFailed.Clone().SetData("tally", "overflow")
		return
	}

	cast.Votes = votes + 1
	err = t.setTally(current, cast.Votes)

	return
}

// Setup writes the member count and the membership markers. Setup is not
// done by the hook itself, the host seeds it.
func (t Table) Setup(members []account.ID) error {
	if len(members) < 1 || len(members) > 255 {
		return errors.GovernanceInvalidConfig.Clone().SetData("members", len(members))
	}

	seen := map[account.ID]bool{}
	for seat, member := range members {
		if member.IsZero() || seen[member] {
			return errors.GovernanceInvalidConfig.Clone().SetData("member", member)
		}
		seen[member] = true

		if err := t.state.Set(MemberKey(member), []byte{byte(seat)}); err != nil {
			return err
		}
	}

	return t.state.Set(MemberCountKey, []byte{byte(len(members))})
}
