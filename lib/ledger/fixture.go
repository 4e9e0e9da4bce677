package ledger

import (
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

// Fixture is the initial state of a ledger.
//
//	sequence: 10
//	programs: [govern-rescue]
//	accounts:
//	  - account: rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh
//	    hooks: {0: govern-rescue}
//	    members: [r..., r...]
type Fixture struct {
	Sequence uint32           `yaml:"sequence"`
	Programs []string         `yaml:"programs"`
	Accounts []AccountFixture `yaml:"accounts"`
}

type AccountFixture struct {
	Account account.ID `yaml:"account"`
	// Hooks maps a slot to a program name or a hook hash.
	Hooks   map[uint8]string `yaml:"hooks"`
	Members []account.ID     `yaml:"members"`
}

func LoadFixture(b []byte) (fixture Fixture, err error) {
	if err = yaml.Unmarshal(b, &fixture); err != nil {
		err = errors.BadRequestParameter.Clone().SetData("fixture", err.Error())
	}

	return
}

func resolveHook(name string) (common.Hash, error) {
	if hook.HasHook(name) {
		return hook.NewNativeDefinition(name).HookHash, nil
	}

	return common.NewHashFromString(name)
}

// Seed writes fixture into the ledger: hook definitions of the programs,
// hook slots, and governance table membership.
func (l *Ledger) Seed(fixture Fixture) error {
	l.Lock()
	defer l.Unlock()

	for _, name := range fixture.Programs {
		if !hook.HasHook(name) {
			return errors.HookNotRegistered.Clone().SetData("program", name)
		}
		if err := l.AddDefinition(hook.NewNativeDefinition(name)); err != nil {
			return err
		}
	}

	ts, err := l.st.OpenTransaction()
	if err != nil {
		return err
	}

	if fixture.Sequence > 0 {
		if err = ts.Set(KeyPrefixSequence, fixture.Sequence); err != nil {
			ts.Discard()
			return err
		}
	}

	for _, a := range fixture.Accounts {
		if err = seedAccount(l, ts, a); err != nil {
			ts.Discard()
			return err
		}
	}

	return ts.Commit()
}

func seedAccount(l *Ledger, ts *storage.LevelDBBackend, a AccountFixture) error {
	slots, err := getSlots(ts, a.Account)
	if err != nil {
		return err
	}

	var indexes []int
	for slot := range a.Hooks {
		indexes = append(indexes, int(slot))
	}
	sort.Ints(indexes)

	for _, slot := range indexes {
		if slot >= transaction.HookMax {
			return errors.TransactionInvalidSlot.Clone().SetData("slot", slot)
		}

		hash, err := resolveHook(a.Hooks[uint8(slot)])
		if err != nil {
			return err
		}
		if _, err = l.definition(ts, hash); err != nil {
			return err
		}
		slots[slot] = hash
	}

	if len(a.Hooks) > 0 {
		if err = setSlots(ts, a.Account, slots); err != nil {
			return err
		}
	}

	if len(a.Members) > 0 {
		table := governance.NewTable(hook.NewStorageState(ts, a.Account))
		if err = table.Setup(a.Members); err != nil {
			return err
		}
	}

	return nil
}
