package event

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Round lifecycle event types
const (
	RoundCreated Type = Type(domain.EventTypeRoundCreated)
	StakePlaced  Type = Type(domain.EventTypeStakePlaced)
	RoundEnded   Type = Type(domain.EventTypeRoundEnded)
	WinClaimed   Type = Type(domain.EventTypeWinClaimed)
)

// Typed event payloads for type safety

// RoundCreatedPayloadV1 is the typed payload for round creation events
type RoundCreatedPayloadV1 struct {
	RoundID     int64  `json:"round_id"`
	Description string `json:"description"`
	CreatorID   string `json:"creator_id"`
	FeeBps      int    `json:"fee_bps"`
	Timestamp   int64  `json:"timestamp"`
}

// StakePlacedPayloadV1 is the typed payload for stake events
type StakePlacedPayloadV1 struct {
	RoundID       int64  `json:"round_id"`
	Side          string `json:"side"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
	Timestamp     int64  `json:"timestamp"`
}

// RoundEndedPayloadV1 is the typed payload for resolution events
type RoundEndedPayloadV1 struct {
	RoundID     int64  `json:"round_id"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
	Pool        int64  `json:"pool"`
	FeeAmount   int64  `json:"fee_amount"`           // retained by the engine; zero on refund outcomes
	Commitment  string `json:"commitment,omitempty"` // hex, proof-gated deployments only
	Timestamp   int64  `json:"timestamp"`
}

// WinClaimedPayloadV1 is the typed payload for claim events
type WinClaimedPayloadV1 struct {
	RoundID       int64  `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewRoundCreatedEvent creates a new round created event
func NewRoundCreatedEvent(round *domain.Round) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundCreated,
		Payload: RoundCreatedPayloadV1{
			RoundID:     round.ID,
			Description: round.Description,
			CreatorID:   round.CreatorID,
			FeeBps:      round.FeeBps,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewStakePlacedEvent creates a new stake placed event
func NewStakePlacedEvent(roundID int64, side domain.Side, participantID string, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StakePlaced,
		Payload: StakePlacedPayloadV1{
			RoundID:       roundID,
			Side:          string(side),
			ParticipantID: participantID,
			Amount:        amount,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewRoundEndedEvent creates a new round ended event
func NewRoundEndedEvent(round *domain.Round, outcome domain.RoundState, feeAmount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundEnded,
		Payload: RoundEndedPayloadV1{
			RoundID:     round.ID,
			Description: round.Description,
			Outcome:     string(outcome),
			Pool:        round.Pool(),
			FeeAmount:   feeAmount,
			Commitment:  hex.EncodeToString(round.Commitment),
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewWinClaimedEvent creates a new win claimed event
func NewWinClaimedEvent(roundID int64, participantID string, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WinClaimed,
		Payload: WinClaimedPayloadV1{
			RoundID:       roundID,
			ParticipantID: participantID,
			Amount:        amount,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the write side of the bus; both MemoryBus and
// ResilientPublisher satisfy it
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// the engine's operations commit before their events are published, so a slow
// handler delays notification, never the operation's effect.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
