package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Round errors
	ErrMsgRoundNotFound    = "round does not exist"
	ErrMsgRoundStillActive = "round still active"
	ErrMsgRoundNotActive   = "round is not in progress"
	ErrMsgInvalidOutcome   = "invalid outcome"
	ErrMsgNotCreator       = "only the round creator may resolve"
	ErrMsgInvalidFeeRate   = "invalid fee rate"

	// Stake errors
	ErrMsgStakeAmountPositive = "stake amount must be positive"
	ErrMsgInvalidSide         = "invalid side"

	// Claim errors
	ErrMsgNoWin                = "no win"
	ErrMsgAlreadyClaimed       = "already claimed"
	ErrMsgInvalidProof         = "invalid proof"
	ErrMsgCommitmentRequired   = "commitment required"
	ErrMsgUnexpectedCommitment = "commitment not accepted in ledger mode"
	ErrMsgProofModeRequired    = "proof required for win claims in this deployment"
	ErrMsgLedgerModeRequired   = "proof claims not accepted in this deployment"

	// Wallet errors
	ErrMsgAccountNotFound   = "account not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgDepositPositive   = "deposit amount must be positive"

	// Character sheet errors
	ErrMsgSheetExists       = "character already exists"
	ErrMsgSheetNotFound     = "character does not exist"
	ErrMsgInvalidName       = "invalid name"
	ErrMsgInvalidScore      = "ability score out of range"
	ErrMsgInvalidLevel      = "invalid level"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%s: %w", context, domain.ErrXxx) for
// additional context.
var (
	// Round errors
	ErrRoundNotFound    = errors.New(ErrMsgRoundNotFound)
	ErrRoundStillActive = errors.New(ErrMsgRoundStillActive)
	ErrRoundNotActive   = errors.New(ErrMsgRoundNotActive)
	ErrInvalidOutcome   = errors.New(ErrMsgInvalidOutcome)
	ErrNotCreator       = errors.New(ErrMsgNotCreator)
	ErrInvalidFeeRate   = errors.New(ErrMsgInvalidFeeRate)

	// Stake errors
	ErrStakeAmountPositive = errors.New(ErrMsgStakeAmountPositive)
	ErrInvalidSide         = errors.New(ErrMsgInvalidSide)

	// Claim errors
	ErrNoWin                = errors.New(ErrMsgNoWin)
	ErrAlreadyClaimed       = errors.New(ErrMsgAlreadyClaimed)
	ErrInvalidProof         = errors.New(ErrMsgInvalidProof)
	ErrCommitmentRequired   = errors.New(ErrMsgCommitmentRequired)
	ErrUnexpectedCommitment = errors.New(ErrMsgUnexpectedCommitment)
	ErrProofModeRequired    = errors.New(ErrMsgProofModeRequired)
	ErrLedgerModeRequired   = errors.New(ErrMsgLedgerModeRequired)

	// Wallet errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrDepositPositive   = errors.New(ErrMsgDepositPositive)

	// Character sheet errors
	ErrSheetExists   = errors.New(ErrMsgSheetExists)
	ErrSheetNotFound = errors.New(ErrMsgSheetNotFound)
	ErrInvalidName   = errors.New(ErrMsgInvalidName)
	ErrInvalidScore  = errors.New(ErrMsgInvalidScore)
	ErrInvalidLevel  = errors.New(ErrMsgInvalidLevel)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
