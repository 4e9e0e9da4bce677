package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
)

var hookhashCmd = &cobra.Command{
	Use:   "hookhash <program name | file>",
	Short: "Print the hook hash of a registered program or of a hook binary",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		h, err := hookHash(args[0])
		if err != nil {
			cmdcommon.PrintError(c, err)
		}
		fmt.Println(h.String())
	},
}

func init() {
	rootCmd.AddCommand(hookhashCmd)
}

func hookHash(s string) (common.Hash, error) {
	if hook.HasHook(s) {
		return hook.NewNativeDefinition(s).HookHash, nil
	}

	b, err := ioutil.ReadFile(s)
	if err != nil {
		return common.ZeroHash, err
	}

	return hook.Hash(b), nil
}
