package metrics

const (
	Namespace           = "govern"
	HookSubsystem       = "hook"
	GovernanceSubsystem = "governance"
	LedgerSubsystem     = "ledger"
	APISubsystem        = "api"
)

const (
	OutcomeAccept   = "accept"
	OutcomeRollback = "rollback"
	OutcomeError    = "error"

	ActionHookInstall = "hook_install"
	ActionHookDelete  = "hook_delete"
	ActionRelay       = "relay"
)
