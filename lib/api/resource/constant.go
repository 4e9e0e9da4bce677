package resource

const (
	APIVersionV1 = "/v1"

	URLNodeInfo      = APIVersionV1 + "/"
	URLTransactions  = APIVersionV1 + "/transactions"
	URLTransaction   = APIVersionV1 + "/transactions/{id}"
	URLAccountHooks  = APIVersionV1 + "/accounts/{id}/hooks"
	URLAccountTable  = APIVersionV1 + "/accounts/{id}/table"
	URLTopicTallies  = APIVersionV1 + "/accounts/{id}/topics/{topic}/tallies"
	URLTopicVotes    = APIVersionV1 + "/accounts/{id}/topics/{topic}/votes"
	URLLedger        = APIVersionV1 + "/ledger"
	URLLedgerClose   = APIVersionV1 + "/ledger/close"
	URLLedgerEmitted = APIVersionV1 + "/ledger/emitted"
	URLDefinition    = APIVersionV1 + "/definitions/{id}"
)
