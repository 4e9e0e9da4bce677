package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
)

// ProgramName is the name the governance hook is registered with.
const ProgramName = "govern-rescue"

func init() {
	Register(DefaultConfig())
}

// Register (re)registers the governance hook with config.
func Register(config Config) {
	hook.AddHook(ProgramName, NewProgram(config))
}

// Definition is the hook definition of the governance hook.
func Definition() hook.Definition {
	return hook.NewNativeDefinition(ProgramName)
}

func NewProgram(config Config) hook.Program {
	return func(ctx *hook.Context) error {
		checker := NewVoteChecker(config, ctx)
		return common.RunChecker(checker, logStage)
	}
}
