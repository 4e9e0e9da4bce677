package metrics

var (
	Hook       = NopHookMetrics()
	Governance = NopGovernanceMetrics()
	Ledger     = NopLedgerMetrics()
	API        = NopAPIMetrics()
)
