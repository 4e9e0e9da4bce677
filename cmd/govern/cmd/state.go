package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
)

var (
	flagStateTopic string
	flagStateLayer uint8
)

var stateCmd = &cobra.Command{
	Use:   "state [<table address>]",
	Short: "Print the hooks and the governance state of a table",
	Args:  cobra.MaximumNArgs(1),
	Run: func(c *cobra.Command, args []string) {
		var address string
		if len(args) > 0 {
			address = args[0]
		}
		if err := runState(address); err != nil {
			cmdcommon.PrintError(c, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)

	stateCmd.Flags().StringVar(&flagStateTopic, "topic", flagStateTopic, "print the tallies and votes of this topic, 'H3'")
	stateCmd.Flags().Uint8Var(&flagStateLayer, "layer", flagStateLayer, "layer of the tallies; 0 is every layer")
}

type TopicState struct {
	Topic   governance.Topic         `json:"topic" yaml:"topic"`
	Tallies []governance.TallyRecord `json:"tallies" yaml:"tallies"`
	Votes   []governance.VoteRecord  `json:"votes" yaml:"votes"`
}

type TableState struct {
	Sequence uint32               `json:"ledger_sequence" yaml:"ledger_sequence"`
	Hooks    hook.Slots           `json:"hooks" yaml:"hooks"`
	Table    governance.TableInfo `json:"table" yaml:"table"`
	Topic    *TopicState          `json:"topic,omitempty" yaml:"topic,omitempty"`
}

func loadTableState(l *ledger.Ledger, st *storage.LevelDBBackend, config governance.Config, id account.ID) (state TableState, err error) {
	if state.Sequence, err = l.Sequence(); err != nil {
		return
	}
	if state.Hooks, err = l.HookSlots(id); err != nil {
		return
	}
	if state.Table, err = governance.Info(st, config, id); err != nil {
		return
	}

	if len(flagStateTopic) < 1 {
		return
	}

	var topic governance.Topic
	if topic, err = governance.ParseTopicString(flagStateTopic); err != nil {
		err = errors.Wrap(err, "--topic")
		return
	}

	layer := governance.Layer(flagStateLayer)
	ts := &TopicState{Topic: topic}
	if ts.Tallies, err = governance.Tallies(st, id, topic, layer); err != nil {
		return
	}
	if ts.Votes, err = governance.Votes(st, id, topic, layer); err != nil {
		return
	}
	state.Topic = ts

	return
}

func runState(address string) error {
	config, err := parseConfig()
	if err != nil {
		return err
	}

	id := config.Genesis
	if len(address) > 0 {
		if id, err = account.Parse(address); err != nil {
			return err
		}
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	state, err := loadTableState(l, st, config, id)
	if err != nil {
		return err
	}

	return printResult(state)
}
