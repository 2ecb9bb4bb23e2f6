package handler

import (
	"net/http"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/wallet"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	service wallet.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

// CreateAccountRequest is the request body for opening an account
type CreateAccountRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,max=64"`
}

// FundsRequest is the request body for deposits and withdrawals
type FundsRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,max=64"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// AccountResponse is the wire representation of an account
type AccountResponse struct {
	ParticipantID string `json:"participant_id"`
	Balance       int64  `json:"balance"`
}

func toAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ParticipantID: account.ParticipantID,
		Balance:       account.Balance,
	}
}

// HandleCreateAccount handles POST /api/v1/wallet
func (h *WalletHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateAccountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "create account"); err != nil {
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.ParticipantID)
	if err != nil {
		log.Error("Failed to create account", "participantID", req.ParticipantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusCreated, toAccountResponse(account))
}

// HandleDeposit handles POST /api/v1/wallet/deposit
func (h *WalletHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req FundsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "deposit"); err != nil {
		return
	}

	account, err := h.service.Deposit(r.Context(), req.ParticipantID, req.Amount)
	if err != nil {
		log.Error(ErrMsgDepositFailed, "participantID", req.ParticipantID, "amount", req.Amount, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleWithdraw handles POST /api/v1/wallet/withdraw
func (h *WalletHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req FundsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "withdraw"); err != nil {
		return
	}

	account, err := h.service.Withdraw(r.Context(), req.ParticipantID, req.Amount)
	if err != nil {
		log.Error(ErrMsgWithdrawFailed, "participantID", req.ParticipantID, "amount", req.Amount, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleGetBalance handles GET /api/v1/wallet/balance?participant={id}
func (h *WalletHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	participantID, ok := GetQueryParam(r, w, "participant")
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(r.Context(), participantID)
	if err != nil {
		log.Error(ErrMsgGetBalanceFailed, "participantID", participantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, AccountResponse{
		ParticipantID: participantID,
		Balance:       balance,
	})
}
