package handler

import (
	"net/http"

	"github.com/wagerworks/parimutuel/internal/charsheet"
	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/logger"
)

// CharsheetHandler handles character sheet HTTP requests
type CharsheetHandler struct {
	service charsheet.Service
}

// NewCharsheetHandler creates a new charsheet handler
func NewCharsheetHandler(service charsheet.Service) *CharsheetHandler {
	return &CharsheetHandler{service: service}
}

// ScoresPayload carries one ability score snapshot on the wire
type ScoresPayload struct {
	Level int `json:"level" validate:"required,min=1,max=20"`
	Str   int `json:"strength" validate:"required,min=3,max=18"`
	Dex   int `json:"dexterity" validate:"required,min=3,max=18"`
	Con   int `json:"constitution" validate:"required,min=3,max=18"`
	Int   int `json:"intelligence" validate:"required,min=3,max=18"`
	Wis   int `json:"wisdom" validate:"required,min=3,max=18"`
	Cha   int `json:"charisma" validate:"required,min=3,max=18"`
}

func (p ScoresPayload) toDomain() domain.AbilityScores {
	return domain.AbilityScores{
		Level: p.Level,
		Str:   p.Str,
		Dex:   p.Dex,
		Con:   p.Con,
		Int:   p.Int,
		Wis:   p.Wis,
		Cha:   p.Cha,
	}
}

// CreateSheetRequest is the request body for creating a character sheet
type CreateSheetRequest struct {
	OwnerID   string        `json:"owner_id" validate:"required,max=64"`
	Name      string        `json:"name" validate:"required,max=100"`
	RaceClass string        `json:"race_class" validate:"max=100"`
	Scores    ScoresPayload `json:"scores" validate:"required"`
}

// UpdateScoresRequest is the request body for appending a score snapshot
type UpdateScoresRequest struct {
	OwnerID string        `json:"owner_id" validate:"required,max=64"`
	Scores  ScoresPayload `json:"scores" validate:"required"`
}

// HistoryResponse returns an owner's score snapshots, oldest first
type HistoryResponse struct {
	OwnerID string                 `json:"owner_id"`
	Length  int                    `json:"length"`
	History []domain.AbilityScores `json:"history"`
}

// HandleCreateSheet handles POST /api/v1/charsheet
func (h *CharsheetHandler) HandleCreateSheet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateSheetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "create sheet"); err != nil {
		return
	}

	sheet, err := h.service.CreateSheet(r.Context(), req.OwnerID, req.Name, req.RaceClass, req.Scores.toDomain())
	if err != nil {
		log.Error("Failed to create sheet", "ownerID", req.OwnerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusCreated, sheet)
}

// HandleUpdateScores handles PUT /api/v1/charsheet/scores
func (h *CharsheetHandler) HandleUpdateScores(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpdateScoresRequest
	if err := DecodeAndValidateRequest(r, w, &req, "update scores"); err != nil {
		return
	}

	if err := h.service.UpdateScores(r.Context(), req.OwnerID, req.Scores.toDomain()); err != nil {
		log.Error("Failed to update scores", "ownerID", req.OwnerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Scores updated"})
}

// HandleGetSheet handles GET /api/v1/charsheet?owner={id}
func (h *CharsheetHandler) HandleGetSheet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := GetQueryParam(r, w, "owner")
	if !ok {
		return
	}

	sheet, err := h.service.GetSheet(r.Context(), ownerID)
	if err != nil {
		log.Error("Failed to get sheet", "ownerID", ownerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, sheet)
}

// HandleGetHistory handles GET /api/v1/charsheet/history?owner={id}
func (h *CharsheetHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := GetQueryParam(r, w, "owner")
	if !ok {
		return
	}

	history, err := h.service.GetHistory(r.Context(), ownerID)
	if err != nil {
		log.Error("Failed to get score history", "ownerID", ownerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponse{
		OwnerID: ownerID,
		Length:  len(history),
		History: history,
	})
}

// HandleDeleteSheet handles DELETE /api/v1/charsheet?owner={id}
func (h *CharsheetHandler) HandleDeleteSheet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := GetQueryParam(r, w, "owner")
	if !ok {
		return
	}

	if err := h.service.DeleteSheet(r.Context(), ownerID); err != nil {
		log.Error("Failed to delete sheet", "ownerID", ownerID, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Character deleted"})
}
