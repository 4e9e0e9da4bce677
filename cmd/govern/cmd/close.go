package cmd

import (
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
)

var flagCloseCount int = 1

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close ledgers and apply the due emitted transactions",
	Run: func(c *cobra.Command, args []string) {
		if err := runClose(flagCloseCount); err != nil {
			cmdcommon.PrintError(c, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)

	closeCmd.Flags().IntVar(&flagCloseCount, "count", flagCloseCount, "number of ledgers to close")
}

func runClose(count int) error {
	if _, err := parseConfig(); err != nil {
		return err
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	for i := 0; i < count; i++ {
		result, err := l.Close()
		if err != nil {
			return err
		}

		log.Info(
			"ledger closed",
			"sequence", result.Sequence,
			"applied", len(result.Applied),
			"expired", len(result.Expired),
		)
		if err = printResult(result); err != nil {
			return err
		}
	}

	return nil
}
