package errors

var (
	// storage
	StorageRecordDoesNotExist  = NewError(100, "record does not exist")
	StorageRecordAlreadyExists = NewError(101, "record already exists")
	StorageCoreError           = NewError(102, "storage error")
	StorageJournalClosed       = NewError(103, "journal is already committed or discarded")
	InvalidStorageConfig       = NewError(104, "invalid storage config")

	// account and encoding
	InvalidAccountID   = NewError(110, "invalid account id")
	InvalidAddress     = NewError(111, "invalid account address")
	InvalidHash        = NewError(112, "invalid hash")
	InvalidHexEncoding = NewError(113, "invalid hex encoding")

	// transaction
	UnknownTransactionType   = NewError(120, "unknown transaction type")
	TransactionInvalidSlot   = NewError(121, "hook slot is out of range")
	TransactionInvalidAmount = NewError(122, "invalid amount")
	TransactionMissingField  = NewError(123, "transaction field is missing")
	TransactionEncodeFailed  = NewError(124, "failed to encode transaction")

	// hook runtime
	HookNotRegistered       = NewError(130, "hook program is not registered")
	HookAlreadyRegistered   = NewError(131, "hook program is already registered")
	HookEmitReserveExceeded = NewError(132, "emitted transactions exceed reservation")
	HookEmitNotReserved     = NewError(133, "emission reserve was not set")
	HookReserveAlreadySet   = NewError(134, "emission reserve is already set")
	HookDefinitionNotFound  = NewError(135, "hook definition does not exist")
	HookAccountNotFound     = NewError(136, "account does not exist")
	HookStateKeyTooLong     = NewError(137, "hook state key is longer than 32 bytes")
	HookProgramAborted      = NewError(138, "hook program aborted")
	HookEmitFailed          = NewError(139, "failed to emit transaction")

	// governance, hard failures of a vote invocation
	GovernanceNotMember          = NewError(150, "Governance: You are not currently a governance member at this table.")
	GovernanceInvalidTopic       = NewError(151, "Governance: Valid TOPIC must be specified as otxn parameter.")
	GovernanceInvalidHookTopic   = NewError(152, "Governance: Valid hook topics are 0 through 9.")
	GovernanceMissingLayer       = NewError(153, "Governance: Missing L parameter. Which layer are you voting for?")
	GovernanceInvalidLayer       = NewError(154, "Governance: Layer parameter must be '1' or '2'.")
	GovernanceInvalidVoteData    = NewError(155, "Governance: Missing or incorrect size of VOTE data for TOPIC type.")
	GovernanceAssertionFailed    = NewError(156, "Govern: Assertion failed.")
	GovernanceHookHashNotFound   = NewError(157, "Goverance: Hook Hash doesn't exist on ledger while actioning hook.")
	GovernanceRelayEmitFailed    = NewError(158, "Governance: L1 vote emission failed.")
	GovernanceHookEmitFailed     = NewError(159, "Governance: Emit failed during hook actioning.")
	GovernanceInternalLogicError = NewError(160, "Governance: Internal logic error.")
	GovernanceInvalidConfig      = NewError(161, "Governance: invalid configuration")

	// api
	BadRequestParameter = NewError(170, "bad request parameter")
	ContentTypeNotJSON  = NewError(171, "`Content-Type` must be 'application/json'")
)
