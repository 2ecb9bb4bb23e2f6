package metrics

import (
	"context"

	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/logger"
)

// EventMetricsCollector subscribes to engine events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundCreated,
		event.StakePlaced,
		event.RoundEnded,
		event.WinClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.RoundCreatedPayloadV1:
		RoundsCreated.Inc()

	case event.StakePlacedPayloadV1:
		StakesPlaced.WithLabelValues(payload.Side).Inc()
		AmountStaked.WithLabelValues(payload.Side).Add(float64(payload.Amount))

	case event.RoundEndedPayloadV1:
		RoundsResolved.WithLabelValues(payload.Outcome).Inc()
		FeesRetained.Add(float64(payload.FeeAmount))

	case event.WinClaimedPayloadV1:
		WinsClaimed.Inc()
		AmountPaidOut.Add(float64(payload.Amount))

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
