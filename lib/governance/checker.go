package governance

import (
	"encoding/binary"

	logging "github.com/inconshreveable/log15"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
)

// VoteChecker carries one invocation of the governance hook through
// `VoteCheckerFuncs`.
type VoteChecker struct {
	common.DefaultChecker

	Config  Config
	Context *hook.Context
	Table   Table

	IsPrimary   bool
	MemberCount uint64
	Topic       Topic
	Layer       Layer
	Value       [VoteValueLength]byte
	Cast        Cast
	Policy      ThresholdPolicy

	Log logging.Logger
}

func NewVoteChecker(config Config, ctx *hook.Context) *VoteChecker {
	return &VoteChecker{
		DefaultChecker: common.DefaultChecker{Funcs: VoteCheckerFuncs},
		Config:         config,
		Context:        ctx,
		Table:          NewTable(ctx.State),
		Log: log.New(logging.Ctx{
			"invocation":   ctx.InvocationID,
			"hook-account": ctx.HookAccount,
			"tx":           ctx.TransactionHash,
			"sender":       ctx.Transaction.Account,
		}),
	}
}

// logStage logs where an invocation stopped.
func logStage(i int, c common.Checker, err error) {
	if err == nil {
		return
	}

	checker := c.(*VoteChecker)
	if stop, ok := common.IsCheckerStop(err); ok {
		checker.Log.Debug("accepted", "stage", i, "message", stop.Message)
		return
	}

	checker.Log.Debug("rolled back", "stage", i, "error", err)
}

var VoteCheckerFuncs = []common.CheckerFunc{
	CheckEnvelope,
	CheckOutgoing,
	CheckTier,
	CheckSetup,
	CheckMember,
	CheckTopic,
	CheckLayer,
	CheckVoteValue,
	RecordVote,
	CheckQuorum,
	Enact,
}

// CheckEnvelope passes transactions which can not carry a vote.
func CheckEnvelope(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)
	tx := checker.Context.Transaction

	if b, found := tx.Parameter(ParamDebug); found && len(b) == 2 {
		checker.Log.Debug("debug line", "line", binary.BigEndian.Uint16(b))
	}

	if !checker.Config.IsEnvelope(tx.Type) {
		return StopNotEnvelope
	}

	if tx.Amount != nil {
		if !tx.Amount.IsNative() {
			return StopNonNativeAmount
		}
		if tx.Amount.Value > checker.Config.MaxEnvelopeDrops {
			return StopTooManyDrops
		}
	}

	return
}

// CheckOutgoing passes transactions sent by the hook account to another
// account.
func CheckOutgoing(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)
	tx := checker.Context.Transaction

	if tx.Account != checker.Context.HookAccount {
		return
	}
	if tx.HasDestination() && *tx.Destination != checker.Context.HookAccount {
		return StopOutgoing
	}

	return
}

func CheckTier(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	checker.IsPrimary = checker.Config.IsPrimary(checker.Context.HookAccount)
	if checker.IsPrimary {
		checker.Log.Debug("starting governance logic on L1 table")
	} else {
		checker.Log.Debug("starting governance logic on L2 table")
	}

	return
}

func CheckSetup(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	var found bool
	if checker.MemberCount, found, err = checker.Table.MemberCount(); err != nil {
		return
	} else if !found {
		return StopSetupNotDone
	}

	checker.Policy = NewThresholdPolicy(checker.MemberCount, checker.IsPrimary)

	return
}

func CheckMember(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	var isMember bool
	if isMember, err = checker.Table.IsMember(checker.Context.Transaction.Account); err != nil {
		return
	} else if !isMember {
		return errors.GovernanceNotMember
	}

	return
}

func CheckTopic(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	b, _ := checker.Context.Transaction.Parameter(ParamTopic)
	if checker.Topic, err = ParseTopic(b); err != nil {
		return
	}

	switch checker.Topic.Kind {
	case TopicSeat:
		return StopSeatTopic
	case TopicReward:
		return StopRewardTopic
	}

	if err = checker.Topic.Validate(); err != nil {
		return
	}

	checker.Log = checker.Log.New(logging.Ctx{"topic": checker.Topic})

	return
}

// CheckLayer reads `L`; at the L1 table every vote is a layer 1 vote.
func CheckLayer(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	if checker.IsPrimary {
		checker.Layer = LayerPrimary
	} else {
		b, found := checker.Context.Transaction.Parameter(ParamLayer)
		if checker.Layer, err = ParseLayer(b, found); err != nil {
			return
		}
	}

	checker.Log = checker.Log.New(logging.Ctx{"layer": checker.Layer})

	return
}

func CheckVoteValue(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	b, _ := checker.Context.Transaction.Parameter(ParamValue)
	checker.Value, err = ParseVoteValue(b)

	return
}

func RecordVote(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	if checker.Cast, err = checker.Table.Cast(
		checker.Context.Transaction.Account,
		checker.Topic,
		checker.Layer,
		checker.Value,
	); err != nil {
		return
	}

	metrics.Governance.AddVote(checker.Topic.String(), checker.Layer.String())
	checker.Log.Debug(
		"vote recorded",
		"votes", checker.Cast.Votes,
		"member-count", checker.MemberCount,
		"had-previous", checker.Cast.HadPrevious,
	)

	return
}

func CheckQuorum(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	if checker.Policy.Reached(checker.Topic, checker.Layer, checker.Cast.Votes) {
		return
	}

	if checker.IsPrimary || checker.Layer == LayerLocal {
		return StopNotEnoughVotes
	}

	return StopNotEnoughL1Votes
}

// Enact relays layer 1 votes of an L2 table to the L1 table, and actions
// everything else at the table itself.
func Enact(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	if err = checker.Context.Reserve(1); err != nil {
		return
	}

	if checker.Layer == LayerPrimary && !checker.IsPrimary {
		return Relay(checker)
	}

	switch checker.Topic.Kind {
	case TopicHook:
		return ActionHook(checker)
	}

	return errors.GovernanceInternalLogicError
}
