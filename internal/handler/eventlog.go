package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wagerworks/parimutuel/internal/eventlog"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/repository"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// EventLogHandler handles audit log HTTP requests
type EventLogHandler struct {
	service eventlog.Service
}

// NewEventLogHandler creates a new event log handler
func NewEventLogHandler(service eventlog.Service) *EventLogHandler {
	return &EventLogHandler{service: service}
}

// EventsResponse returns audit log entries, newest first
type EventsResponse struct {
	Events []repository.EventLogEntry `json:"events"`
	Count  int                        `json:"count"`
}

// HandleGetEvents handles GET /api/v1/events with optional participant, type,
// since, until (RFC 3339) and limit query parameters.
func (h *EventLogHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	filter := repository.EventLogFilter{Limit: defaultEventLimit}

	if participant := r.URL.Query().Get("participant"); participant != "" {
		filter.ParticipantID = &participant
	}
	if eventType := r.URL.Query().Get("type"); eventType != "" {
		filter.EventType = &eventType
	}
	if since := r.URL.Query().Get("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid since timestamp")
			return
		}
		filter.Since = &t
	}
	if until := r.URL.Query().Get("until"); until != "" {
		t, err := time.Parse(time.RFC3339, until)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid until timestamp")
			return
		}
		filter.Until = &t
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 || limit > maxEventLimit {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	events, err := h.service.GetEvents(r.Context(), filter)
	if err != nil {
		log.Error(ErrMsgGetEventsFailed, "error", err)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, EventsResponse{Events: events, Count: len(events)})
}
