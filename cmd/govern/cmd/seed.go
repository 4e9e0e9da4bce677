package cmd

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixture.yml>",
	Short: "Write the initial ledger state from a yaml fixture",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		if err := runSeed(args[0]); err != nil {
			cmdcommon.PrintError(c, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(path string) error {
	if _, err := parseConfig(); err != nil {
		return err
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read fixture")
	}

	fixture, err := ledger.LoadFixture(b)
	if err != nil {
		return err
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if err = l.Seed(fixture); err != nil {
		return err
	}

	log.Info("ledger seeded", "fixture", path, "accounts", len(fixture.Accounts))

	return nil
}
