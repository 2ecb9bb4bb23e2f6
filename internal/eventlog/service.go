// Package eventlog persists engine events into an append-only audit table.
// It subscribes to the in-process bus and writes every round lifecycle event
// it sees; resolution and claim disputes get settled from this log.
package eventlog

import (
	"context"
	"encoding/json"

	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all engine events
	Subscribe(bus event.Bus) error

	// GetEvents retrieves logged events matching the filter
	GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all round lifecycle event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundCreated,
		event.StakePlaced,
		event.RoundEnded,
		event.WinClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent flattens the typed payload and logs it to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := flattenPayload(evt.Payload)
	if err != nil {
		log.Debug(LogMsgPayloadNotLoggable, "type", evt.Type, "error", err)
		return nil
	}

	var participantID *string
	for _, key := range []string{PayloadKeyParticipantID, PayloadKeyCreatorID} {
		if id, ok := payload[key].(string); ok && id != "" {
			participantID = &id
			break
		}
	}

	metadata := map[string]interface{}{MetadataKeySchemaVersion: evt.Version}

	if err := s.repo.LogEvent(ctx, string(evt.Type), participantID, payload, metadata); err != nil {
		log.Error(LogMsgLogEventFailed, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type)
	return nil
}

// flattenPayload converts a typed event payload into a generic map via its
// JSON form, which is also how it is stored.
func flattenPayload(payload interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvents retrieves logged events matching the filter
func (s *service) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
