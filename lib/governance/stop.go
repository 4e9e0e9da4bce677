package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
)

// soft stops; the originating transaction is accepted with the message.
var (
	StopNotEnvelope      = common.NewCheckerStop("Governance Rescue: Passing non-Payment txn. HookOn should be changed to avoid this.")
	StopNonNativeAmount  = common.NewCheckerStop("Non-native currency. Passing.")
	StopTooManyDrops     = common.NewCheckerStop("Only 1 drop allowed. Passing.")
	StopOutgoing         = common.NewCheckerStop("Goverance: Passing outgoing txn.")
	StopSetupNotDone     = common.NewCheckerStop("Governance: Setup has not been done.")
	StopSeatTopic        = common.NewCheckerStop("Governance: Seat topics are not allowed.")
	StopRewardTopic      = common.NewCheckerStop("Governance: Reward topics are not allowed")
	StopAlreadyVoted     = common.NewCheckerStop("Governance: Your vote is already cast this way for this topic.")
	StopNotEnoughVotes   = common.NewCheckerStop("Governance: Vote record. Not yet enough votes to action.")
	StopNotEnoughL1Votes = common.NewCheckerStop("Governance: Not yet enough votes to action L1 vote...")
	StopRelayed          = common.NewCheckerStop("Governance: Successfully emitted L1 vote.")
	StopHookAlreadySame  = common.NewCheckerStop("Goverance: Target hook is already the same as actioned hook.")
	StopHookActioned     = common.NewCheckerStop("Governance: Hook actioned.")
)
