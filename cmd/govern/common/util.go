package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

func errorString(err error) string {
	if e, ok := err.(*errors.Error); ok {
		return e.Message
	}

	return err.Error()
}

// PrintFlagsError prints the error of flagName with the usage and exits.
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, errorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

func PrintError(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", errorString(err))
	}

	os.Exit(1)
}

type ListFlags []string

var _ pflag.Value = (*ListFlags)(nil)

func (i *ListFlags) Type() string {
	return "list"
}

func (i *ListFlags) String() string {
	return strings.Join([]string(*i), " ")
}

func (i *ListFlags) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); len(v) > 0 {
			*i = append(*i, v)
		}
	}

	return nil
}
