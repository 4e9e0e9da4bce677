package hook

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
)

const StateKeyLength = 32

var StatePrefix = []byte("hook-state/")

// State is the key/value namespace of one hook account. Keys are at most
// 32 bytes and are left padded with zeros; setting an empty value deletes.
type State interface {
	Get(key []byte) ([]byte, bool, error)
	Set(key, value []byte) error
}

// NewStateKey left pads key to 32 bytes.
func NewStateKey(key []byte) ([StateKeyLength]byte, error) {
	var k [StateKeyLength]byte
	if len(key) > StateKeyLength {
		return k, errors.HookStateKeyTooLong.Clone().SetData("length", len(key))
	}

	copy(k[StateKeyLength-len(key):], key)
	return k, nil
}

func StatePrefixOf(id account.ID) []byte {
	prefix := make([]byte, 0, len(StatePrefix)+account.IDLength)
	prefix = append(prefix, StatePrefix...)
	return append(prefix, id.Bytes()...)
}

type StorageState struct {
	st      *storage.LevelDBBackend
	account account.ID
}

func NewStorageState(st *storage.LevelDBBackend, id account.ID) *StorageState {
	return &StorageState{st: st, account: id}
}

func (s *StorageState) key(key []byte) ([]byte, error) {
	k, err := NewStateKey(key)
	if err != nil {
		return nil, err
	}

	return append(StatePrefixOf(s.account), k[:]...), nil
}

func (s *StorageState) Get(key []byte) ([]byte, bool, error) {
	k, err := s.key(key)
	if err != nil {
		return nil, false, err
	}

	b, err := s.st.GetRaw(k)
	if err != nil {
		if errors.StorageRecordDoesNotExist.Is(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return b, true, nil
}

func (s *StorageState) Set(key, value []byte) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}

	if len(value) < 1 {
		if err = s.st.Remove(k); errors.StorageRecordDoesNotExist.Is(err) {
			return nil
		}
		return err
	}

	return s.st.PutRaw(k, value)
}

// WalkState visits every state entry of id with its padded 32 byte key.
func WalkState(st *storage.LevelDBBackend, id account.ID, f func(key [StateKeyLength]byte, value []byte) (bool, error)) error {
	prefix := StatePrefixOf(id)
	return st.Walk(prefix, func(k, v []byte) (bool, error) {
		var key [StateKeyLength]byte
		copy(key[:], k[len(prefix):])

		value := make([]byte, len(v))
		copy(value, v)

		return f(key, value)
	})
}
