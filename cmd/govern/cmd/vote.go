package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

var (
	flagVoteMember   string
	flagVoteTable    string
	flagVoteTopic    string
	flagVoteLayer    uint8
	flagVoteValue    string
	flagVoteAmount   uint64 = 1
	flagVoteEndpoint string = common.GetENVValue("GOVERN_ENDPOINT", "")
	flagVoteDryRun   bool
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Send a vote to a governance table",
	Long: `Send a vote to a governance table.

The vote is applied to the local ledger, or posted to a running 'serve' with
--endpoint. --value takes a hook hash, a registered program name, or nothing
to vote for removing the hook.`,
	Run: func(c *cobra.Command, args []string) {
		if err := runVote(); err != nil {
			cmdcommon.PrintError(c, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(voteCmd)

	voteCmd.Flags().StringVar(&flagVoteMember, "member", flagVoteMember, "address of the voting member")
	voteCmd.Flags().StringVar(&flagVoteTable, "table", flagVoteTable, "address of the table; default is genesis")
	voteCmd.Flags().StringVar(&flagVoteTopic, "topic", flagVoteTopic, "topic, 'H0' to 'H9', 'S<n>' or 'R<n>'")
	voteCmd.Flags().Uint8Var(&flagVoteLayer, "layer", flagVoteLayer, "layer, 1 or 2; ignored by the L1 table")
	voteCmd.Flags().StringVar(&flagVoteValue, "value", flagVoteValue, "value of the vote")
	voteCmd.Flags().Uint64Var(&flagVoteAmount, "amount", flagVoteAmount, "drops sent with the vote")
	voteCmd.Flags().StringVar(&flagVoteEndpoint, "endpoint", flagVoteEndpoint, "post the vote to this endpoint, 'http://localhost:2024'")
	voteCmd.Flags().BoolVar(&flagVoteDryRun, "dry-run", flagVoteDryRun, "print the vote transaction only")
}

// parseVoteValue reads a hook hash, a program name or empty.
func parseVoteValue(s string) (common.Hash, error) {
	if len(s) < 1 {
		return common.ZeroHash, nil
	}
	if hook.HasHook(s) {
		return hook.NewNativeDefinition(s).HookHash, nil
	}

	return common.NewHashFromString(s)
}

func buildVoteTx(config governance.Config) (*transaction.Transaction, error) {
	member, err := account.Parse(flagVoteMember)
	if err != nil {
		return nil, errors.Wrap(err, "--member")
	}

	table := config.Genesis
	if len(flagVoteTable) > 0 {
		if table, err = account.Parse(flagVoteTable); err != nil {
			return nil, errors.Wrap(err, "--table")
		}
	}

	topic, err := governance.ParseTopicString(flagVoteTopic)
	if err != nil {
		return nil, errors.Wrap(err, "--topic")
	}

	value, err := parseVoteValue(flagVoteValue)
	if err != nil {
		return nil, errors.Wrap(err, "--value")
	}

	params := []transaction.HookParameter{
		transaction.NewHookParameter(governance.ParamTopic, topic.Bytes()),
		transaction.NewHookParameter(governance.ParamValue, value.Bytes()),
	}
	if flagVoteLayer > 0 {
		params = append(params, transaction.NewHookParameter(governance.ParamLayer, []byte{flagVoteLayer}))
	}

	return transaction.NewPayment(member, table, transaction.NewNativeAmount(flagVoteAmount), params...), nil
}

func runVote() error {
	config, err := parseConfig()
	if err != nil {
		return err
	}

	tx, err := buildVoteTx(config)
	if err != nil {
		return err
	}
	if err = tx.IsWellFormed(); err != nil {
		return err
	}

	if flagVoteDryRun {
		return printResult(tx)
	}

	if len(flagVoteEndpoint) > 0 {
		return postVote(flagVoteEndpoint, tx)
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	result, err := l.Apply(tx)
	if err != nil {
		return err
	}

	log.Debug("vote applied", "hash", result.Hash, "accepted", result.Accepted)

	return printResult(result)
}

func postVote(endpoint string, tx *transaction.Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(endpoint+"/v1/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to post vote")
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Wrapf(err, "invalid response; status=%d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if err = printResult(result); err != nil {
			return err
		}
		return errors.Errorf("vote rejected by endpoint; status=%d", resp.StatusCode)
	}

	return printResult(result)
}
