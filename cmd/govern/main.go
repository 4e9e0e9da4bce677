package main

import (
	"github.com/tequdev/xahau-governance-hook-test/cmd/govern/cmd"
)

func main() {
	cmd.Execute()
}
