package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidRoundID    = "Invalid round id"
	ErrMsgInvalidSideParam  = "Invalid side"
	ErrMsgInvalidHexField   = "Invalid hex encoding"

	// Round operation error messages
	ErrMsgCreateRoundFailed = "Failed to create round"
	ErrMsgPlaceStakeFailed  = "Failed to place stake"
	ErrMsgResolveFailed     = "Failed to resolve round"
	ErrMsgClaimFailed       = "Failed to claim winnings"

	// Wallet operation error messages
	ErrMsgDepositFailed    = "Failed to deposit"
	ErrMsgWithdrawFailed   = "Failed to withdraw"
	ErrMsgGetBalanceFailed = "Failed to get balance"

	// Event log error messages
	ErrMsgGetEventsFailed = "Failed to retrieve events"
)

// Success messages
const (
	MsgStakePlacedSuccess = "Stake placed"
)
