package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Round messages
	ErrMsgRoundNotFoundError    = "Round not found"
	ErrMsgRoundNotActiveError   = "Round is no longer accepting stakes"
	ErrMsgRoundStillActiveError = "Round has not been resolved yet"
	ErrMsgInvalidOutcomeError   = "Invalid outcome"
	ErrMsgNotCreatorError       = "Only the round creator can resolve it"
	ErrMsgInvalidFeeRateError   = "Invalid fee rate"

	// Stake messages
	ErrMsgStakePositiveError = "Stake amount must be positive"
	ErrMsgInvalidSideError   = "Invalid side"

	// Claim messages
	ErrMsgNoWinError                = "Nothing to claim for this round"
	ErrMsgAlreadyClaimedError       = "Winnings already claimed"
	ErrMsgInvalidProofError         = "Claim proof is invalid"
	ErrMsgCommitmentRequiredError   = "A commitment is required to resolve this outcome"
	ErrMsgUnexpectedCommitmentError = "Commitment not accepted for this outcome"
	ErrMsgProofModeRequiredError    = "Win claims require a proof on this server"
	ErrMsgLedgerModeRequiredError   = "Proof claims are not accepted on this server"

	// Wallet messages
	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgNotEnoughMoneyError  = "Not enough funds"
	ErrMsgDepositPositiveError = "Deposit amount must be positive"

	// Character sheet messages
	ErrMsgSheetExistsError   = "Character already exists"
	ErrMsgSheetNotFoundError = "Character not found"
	ErrMsgInvalidNameError   = "Invalid character name"
	ErrMsgInvalidScoreError  = "Ability scores must be between 3 and 18"
	ErrMsgInvalidLevelError  = "Level must be between 1 and 20"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal detail stays in the logs; clients get a stable message
// and status per error class.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound, ErrMsgRoundNotFoundError
	case errors.Is(err, domain.ErrRoundNotActive):
		return http.StatusConflict, ErrMsgRoundNotActiveError
	case errors.Is(err, domain.ErrRoundStillActive):
		return http.StatusConflict, ErrMsgRoundStillActiveError
	case errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusBadRequest, ErrMsgInvalidOutcomeError
	case errors.Is(err, domain.ErrNotCreator):
		return http.StatusForbidden, ErrMsgNotCreatorError
	case errors.Is(err, domain.ErrInvalidFeeRate):
		return http.StatusBadRequest, ErrMsgInvalidFeeRateError
	case errors.Is(err, domain.ErrStakeAmountPositive):
		return http.StatusBadRequest, ErrMsgStakePositiveError
	case errors.Is(err, domain.ErrInvalidSide):
		return http.StatusBadRequest, ErrMsgInvalidSideError
	case errors.Is(err, domain.ErrNoWin):
		return http.StatusBadRequest, ErrMsgNoWinError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidProof):
		return http.StatusForbidden, ErrMsgInvalidProofError
	case errors.Is(err, domain.ErrCommitmentRequired):
		return http.StatusBadRequest, ErrMsgCommitmentRequiredError
	case errors.Is(err, domain.ErrUnexpectedCommitment):
		return http.StatusBadRequest, ErrMsgUnexpectedCommitmentError
	case errors.Is(err, domain.ErrProofModeRequired):
		return http.StatusBadRequest, ErrMsgProofModeRequiredError
	case errors.Is(err, domain.ErrLedgerModeRequired):
		return http.StatusBadRequest, ErrMsgLedgerModeRequiredError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrDepositPositive):
		return http.StatusBadRequest, ErrMsgDepositPositiveError
	case errors.Is(err, domain.ErrSheetExists):
		return http.StatusConflict, ErrMsgSheetExistsError
	case errors.Is(err, domain.ErrSheetNotFound):
		return http.StatusNotFound, ErrMsgSheetNotFoundError
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, domain.ErrInvalidScore):
		return http.StatusBadRequest, ErrMsgInvalidScoreError
	case errors.Is(err, domain.ErrInvalidLevel):
		return http.StatusBadRequest, ErrMsgInvalidLevelError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
