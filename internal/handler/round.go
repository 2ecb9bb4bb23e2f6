package handler

import (
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/wagerworks/parimutuel/internal/betpool"
	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/logger"
)

// RoundHandler handles betting round HTTP requests
type RoundHandler struct {
	service betpool.Service
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(service betpool.Service) *RoundHandler {
	return &RoundHandler{service: service}
}

// CreateRoundRequest is the request body for creating a round
type CreateRoundRequest struct {
	CreatorID   string `json:"creator_id" validate:"required,max=64"`
	Description string `json:"description" validate:"required,max=500"`
	FeeBps      int    `json:"fee_bps" validate:"gte=0,lt=10000"`
}

// PlaceStakeRequest is the request body for placing a stake.
// Side uses wire codes: 0 for X, 1 for Y.
type PlaceStakeRequest struct {
	RoundID       int64  `json:"round_id" validate:"gte=0"`
	ParticipantID string `json:"participant_id" validate:"required,max=64"`
	Side          int    `json:"side" validate:"oneof=0 1"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// ResolveRoundRequest is the request body for resolving a round.
// Outcome uses wire codes: 2 Cancelled, 3 WinX, 4 WinY, 5 Draw.
// Commitment is a hex-encoded 32-byte root, required for win outcomes on
// proof-gated deployments and rejected everywhere else.
type ResolveRoundRequest struct {
	RoundID    int64  `json:"round_id" validate:"gte=0"`
	CallerID   string `json:"caller_id" validate:"required,max=64"`
	Outcome    int    `json:"outcome" validate:"required,oneof=2 3 4 5"`
	Commitment string `json:"commitment,omitempty"`
}

// ClaimRequest is the request body for claiming a payout. When Proof is
// present the claim is verified against the round's commitment and Amount is
// the claimed entitlement; otherwise the entitlement is derived from the
// stake ledger and Amount is ignored.
type ClaimRequest struct {
	RoundID       int64    `json:"round_id" validate:"gte=0"`
	ParticipantID string   `json:"participant_id" validate:"required,max=64"`
	Amount        int64    `json:"amount,omitempty" validate:"gte=0"`
	Proof         []string `json:"proof,omitempty"`
}

// RoundResponse is the wire representation of a round. Commitment is
// hex-encoded to match the encoding accepted on resolve and claim.
type RoundResponse struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	CreatorID   string     `json:"creator_id"`
	FeeBps      int        `json:"fee_bps"`
	State       string     `json:"state"`
	TotalStakeX int64      `json:"total_stake_x"`
	TotalStakeY int64      `json:"total_stake_y"`
	Pool        int64      `json:"pool"`
	Commitment  string     `json:"commitment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// ClaimResponse reports a successful payout
type ClaimResponse struct {
	RoundID       int64  `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
}

// RoundCountResponse reports the number of rounds ever created
type RoundCountResponse struct {
	Count int64 `json:"count"`
}

// StakeResponse reports a participant's stake on one side of a round
type StakeResponse struct {
	RoundID       int64  `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Side          int    `json:"side"`
	Amount        int64  `json:"amount"`
}

// CommitmentResponse carries a resolved round's hex-encoded merkle root
type CommitmentResponse struct {
	RoundID    int64  `json:"round_id"`
	Commitment string `json:"commitment"`
}

// ClaimStatusResponse reports whether a participant has claimed from a round
type ClaimStatusResponse struct {
	RoundID       int64  `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Claimed       bool   `json:"claimed"`
}

func toRoundResponse(round *domain.Round) RoundResponse {
	resp := RoundResponse{
		ID:          round.ID,
		Description: round.Description,
		CreatorID:   round.CreatorID,
		FeeBps:      round.FeeBps,
		State:       string(round.State),
		TotalStakeX: round.TotalStakeX,
		TotalStakeY: round.TotalStakeY,
		Pool:        round.Pool(),
		CreatedAt:   round.CreatedAt,
		EndTime:     round.EndTime,
	}
	if len(round.Commitment) > 0 {
		resp.Commitment = hex.EncodeToString(round.Commitment)
	}
	return resp
}

// HandleCreateRound handles POST /api/v1/round
func (h *RoundHandler) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "create round"); err != nil {
		return
	}

	round, err := h.service.CreateRound(r.Context(), req.CreatorID, req.Description, req.FeeBps)
	if err != nil {
		log.Error(ErrMsgCreateRoundFailed, "creatorID", req.CreatorID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusCreated, toRoundResponse(round))
}

// HandlePlaceStake handles POST /api/v1/round/stake
func (h *RoundHandler) HandlePlaceStake(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlaceStakeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "place stake"); err != nil {
		return
	}

	side, err := domain.SideFromCode(req.Side)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSideError)
		return
	}

	if err := h.service.PlaceStake(r.Context(), req.RoundID, req.ParticipantID, side, req.Amount); err != nil {
		log.Error(ErrMsgPlaceStakeFailed, "roundID", req.RoundID, "participantID", req.ParticipantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStakePlacedSuccess})
}

// HandleResolve handles POST /api/v1/round/resolve
func (h *RoundHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ResolveRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "resolve round"); err != nil {
		return
	}

	outcome, err := domain.OutcomeFromCode(req.Outcome)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidOutcomeError)
		return
	}

	var commitment []byte
	if req.Commitment != "" {
		commitment, err = hex.DecodeString(req.Commitment)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidHexField)
			return
		}
	}

	round, err := h.service.Resolve(r.Context(), req.RoundID, req.CallerID, outcome, commitment)
	if err != nil {
		log.Error(ErrMsgResolveFailed, "roundID", req.RoundID, "callerID", req.CallerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, toRoundResponse(round))
}

// HandleClaim handles POST /api/v1/round/claim
func (h *RoundHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, "claim"); err != nil {
		return
	}

	var amount int64
	var err error
	if req.Proof != nil {
		proof := make([][]byte, 0, len(req.Proof))
		for _, node := range req.Proof {
			decoded, decodeErr := hex.DecodeString(node)
			if decodeErr != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidHexField)
				return
			}
			proof = append(proof, decoded)
		}
		amount, err = h.service.ClaimWinWithProof(r.Context(), req.RoundID, req.ParticipantID, req.Amount, proof)
	} else {
		amount, err = h.service.ClaimWin(r.Context(), req.RoundID, req.ParticipantID)
	}
	if err != nil {
		log.Error(ErrMsgClaimFailed, "roundID", req.RoundID, "participantID", req.ParticipantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, ClaimResponse{
		RoundID:       req.RoundID,
		ParticipantID: req.ParticipantID,
		Amount:        amount,
	})
}

// HandleGetRound handles GET /api/v1/round?id={id}
func (h *RoundHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetRoundIDParam(r, w)
	if !ok {
		return
	}

	round, err := h.service.GetRound(r.Context(), id)
	if err != nil {
		log.Error("Failed to get round", "roundID", id, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, toRoundResponse(round))
}

// HandleGetRoundCount handles GET /api/v1/round/count
func (h *RoundHandler) HandleGetRoundCount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	count, err := h.service.RoundCount(r.Context())
	if err != nil {
		log.Error("Failed to count rounds", "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, RoundCountResponse{Count: count})
}

// HandleGetStake handles GET /api/v1/round/stake?id={id}&participant={id}&side={0|1}
func (h *RoundHandler) HandleGetStake(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetRoundIDParam(r, w)
	if !ok {
		return
	}
	participantID, ok := GetQueryParam(r, w, "participant")
	if !ok {
		return
	}
	sideParam, ok := GetQueryParam(r, w, "side")
	if !ok {
		return
	}

	sideCode, err := strconv.Atoi(sideParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSideError)
		return
	}
	side, err := domain.SideFromCode(sideCode)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSideError)
		return
	}

	amount, err := h.service.GetStake(r.Context(), id, participantID, side)
	if err != nil {
		log.Error("Failed to get stake", "roundID", id, "participantID", participantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, StakeResponse{
		RoundID:       id,
		ParticipantID: participantID,
		Side:          sideCode,
		Amount:        amount,
	})
}

// HandleGetCommitment handles GET /api/v1/round/commitment?id={id}
func (h *RoundHandler) HandleGetCommitment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetRoundIDParam(r, w)
	if !ok {
		return
	}

	commitment, err := h.service.GetCommitment(r.Context(), id)
	if err != nil {
		log.Error("Failed to get commitment", "roundID", id, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, CommitmentResponse{
		RoundID:    id,
		Commitment: hex.EncodeToString(commitment),
	})
}

// HandleGetClaimStatus handles GET /api/v1/round/claimed?id={id}&participant={id}
func (h *RoundHandler) HandleGetClaimStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetRoundIDParam(r, w)
	if !ok {
		return
	}
	participantID, ok := GetQueryParam(r, w, "participant")
	if !ok {
		return
	}

	claimed, err := h.service.HasClaimed(r.Context(), id, participantID)
	if err != nil {
		log.Error("Failed to get claim status", "roundID", id, "participantID", participantID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, ClaimStatusResponse{
		RoundID:       id,
		ParticipantID: participantID,
		Claimed:       claimed,
	})
}
