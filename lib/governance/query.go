package governance

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
)

type TallyRecord struct {
	Topic Topic `json:"topic"`
	Layer Layer `json:"layer"`
	// ValueSuffix is the part of the value kept in the tally key, the last
	// 28 bytes.
	ValueSuffix string `json:"value_suffix"`
	Votes       uint8  `json:"votes"`
}

type VoteRecord struct {
	Member account.ID  `json:"member"`
	Layer  Layer       `json:"layer"`
	Value  common.Hash `json:"value"`
}

type TableInfo struct {
	Account     account.ID      `json:"account"`
	IsPrimary   bool            `json:"primary"`
	IsSetup     bool            `json:"setup"`
	MemberCount uint64          `json:"member_count"`
	Members     []account.ID    `json:"members"`
	Policy      ThresholdPolicy `json:"quorum"`
}

// Tallies lists the tallies of topic at the table of hookAccount; a zero
// layer lists every layer.
func Tallies(st *storage.LevelDBBackend, hookAccount account.ID, topic Topic, layer Layer) ([]TallyRecord, error) {
	records := []TallyRecord{}
	err := hook.WalkState(st, hookAccount, func(key [hook.StateKeyLength]byte, value []byte) (bool, error) {
		k, ok := ParseTallyKey(key[:])
		if !ok || k.Topic != topic || (layer != 0 && k.Layer != layer) || len(value) != 1 {
			return true, nil
		}

		records = append(records, TallyRecord{
			Topic:       k.Topic,
			Layer:       k.Layer,
			ValueSuffix: strings.ToUpper(hex.EncodeToString(k.Value[4:])),
			Votes:       value[0],
		})
		return true, nil
	})

	return records, err
}

// Votes lists the current votes on topic at the table of hookAccount; a zero
// layer lists every layer.
func Votes(st *storage.LevelDBBackend, hookAccount account.ID, topic Topic, layer Layer) ([]VoteRecord, error) {
	records := []VoteRecord{}
	err := hook.WalkState(st, hookAccount, func(key [hook.StateKeyLength]byte, value []byte) (bool, error) {
		k, ok := ParseVoteKey(key[:])
		if !ok || k.Topic != topic || (layer != 0 && k.Layer != layer) || len(value) != VoteValueLength {
			return true, nil
		}

		var v common.Hash
		copy(v[:], value)
		records = append(records, VoteRecord{Member: k.Member, Layer: k.Layer, Value: v})
		return true, nil
	})

	return records, err
}

// Info describes the table of hookAccount.
func Info(st *storage.LevelDBBackend, config Config, hookAccount account.ID) (TableInfo, error) {
	info := TableInfo{
		Account:   hookAccount,
		IsPrimary: config.IsPrimary(hookAccount),
		Members:   []account.ID{},
	}

	var err error
	table := NewTable(hook.NewStorageState(st, hookAccount))
	if info.MemberCount, info.IsSetup, err = table.MemberCount(); err != nil {
		return info, err
	}
	info.Policy = NewThresholdPolicy(info.MemberCount, info.IsPrimary)

	memberCountKey, _ := hook.NewStateKey(MemberCountKey)
	padding := make([]byte, hook.StateKeyLength-account.IDLength)
	err = hook.WalkState(st, hookAccount, func(key [hook.StateKeyLength]byte, value []byte) (bool, error) {
		if key == memberCountKey || !bytes.Equal(key[:len(padding)], padding) {
			return true, nil
		}

		member, err := account.NewIDFromBytes(key[len(padding):])
		if err != nil {
			return false, err
		}
		info.Members = append(info.Members, member)
		return true, nil
	})

	return info, err
}
