package metrics

func InitPrometheusMetrics() {
	Version = PromVersion()
	Hook = PromHookMetrics()
	Governance = PromGovernanceMetrics()
	Ledger = PromLedgerMetrics()
	API = PromAPIMetrics()
}
