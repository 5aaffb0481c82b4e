package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Draw event types
const (
	DrawRollStarted          Type = domain.EventTypeRollStarted
	DrawPreview              Type = domain.EventTypePreview
	DrawWinnersCommitted     Type = domain.EventTypeWinnersCommitted
	DrawTierAdvanced         Type = domain.EventTypeTierAdvanced
	DrawCompleted            Type = domain.EventTypeDrawCompleted
	DrawReset                Type = domain.EventTypeDrawReset
	DrawIntegrityViolation   Type = domain.EventTypeIntegrityViolation
	DrawConfigurationChanged Type = domain.EventTypeConfigurationChanged
)

// AllDrawTypes lists every draw event type, for subscribers that fan out everything
var AllDrawTypes = []Type{
	DrawRollStarted,
	DrawPreview,
	DrawWinnersCommitted,
	DrawTierAdvanced,
	DrawCompleted,
	DrawReset,
	DrawIntegrityViolation,
	DrawConfigurationChanged,
}

// Configuration change kinds
const (
	ChangeRoster = "roster"
	ChangeTiers  = "tiers"
	ChangeMode   = "mode"
)

// Typed event payloads

// RollStartedPayloadV1 is published when a rolling preview begins
type RollStartedPayloadV1 struct {
	Mode           domain.DrawMode `json:"mode"`
	TierLevel      int             `json:"tier_level"`
	TierName       string          `json:"tier_name"`
	RemainingQuota int             `json:"remaining_quota"`
	EligibleCount  int             `json:"eligible_count"`
	Timestamp      int64           `json:"timestamp"`
}

// PreviewPayloadV1 carries the names shown on one preview tick. Display only.
type PreviewPayloadV1 struct {
	Mode         domain.DrawMode      `json:"mode"`
	TierLevel    int                  `json:"tier_level"`
	Participants []domain.Participant `json:"participants"`
	Tick         int64                `json:"tick"`
}

// WinnersCommittedPayloadV1 is published after winners are appended to the ledger
type WinnersCommittedPayloadV1 struct {
	Mode           domain.DrawMode       `json:"mode"`
	TierLevel      int                   `json:"tier_level"`
	TierName       string                `json:"tier_name"`
	Winners        []domain.WinnerRecord `json:"winners"`
	RemainingQuota int                   `json:"remaining_quota"`
	TotalWinners   int                   `json:"total_winners"`
	Timestamp      int64                 `json:"timestamp"`
}

// TierAdvancedPayloadV1 is published when the session moves to the next tier
type TierAdvancedPayloadV1 struct {
	FromLevel int    `json:"from_level"`
	ToLevel   int    `json:"to_level"`
	ToName    string `json:"to_name"`
	TierIndex int    `json:"tier_index"`
	Timestamp int64  `json:"timestamp"`
}

// DrawCompletedPayloadV1 is published once the last tier has no slots left
type DrawCompletedPayloadV1 struct {
	TotalWinners int   `json:"total_winners"`
	TierCount    int   `json:"tier_count"`
	Timestamp    int64 `json:"timestamp"`
}

// DrawResetPayloadV1 is published after a confirmed reset
type DrawResetPayloadV1 struct {
	ClearedWinners int   `json:"cleared_winners"`
	Timestamp      int64 `json:"timestamp"`
}

// IntegrityViolationPayloadV1 is published when the ledger is found corrupted
type IntegrityViolationPayloadV1 struct {
	Operation string `json:"operation"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// ConfigurationChangedPayloadV1 is published when roster, tiers or mode change
type ConfigurationChangedPayloadV1 struct {
	Kind             string          `json:"kind"`
	ParticipantCount int             `json:"participant_count"`
	TierCount        int             `json:"tier_count"`
	Mode             domain.DrawMode `json:"mode"`
	Timestamp        int64           `json:"timestamp"`
}

// Type-safe event constructors

// NewRollStartedEvent creates a roll started event
func NewRollStartedEvent(mode domain.DrawMode, tier domain.PrizeTier, remaining, eligible int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawRollStarted,
		Payload: RollStartedPayloadV1{
			Mode:           mode,
			TierLevel:      tier.Level,
			TierName:       tier.Name,
			RemainingQuota: remaining,
			EligibleCount:  eligible,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewPreviewEvent creates a preview tick event
func NewPreviewEvent(mode domain.DrawMode, tierLevel int, shown []domain.Participant, tick int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawPreview,
		Payload: PreviewPayloadV1{
			Mode:         mode,
			TierLevel:    tierLevel,
			Participants: shown,
			Tick:         tick,
		},
	}
}

// NewWinnersCommittedEvent creates a winners committed event
func NewWinnersCommittedEvent(mode domain.DrawMode, tier domain.PrizeTier, winners []domain.WinnerRecord, remaining, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawWinnersCommitted,
		Payload: WinnersCommittedPayloadV1{
			Mode:           mode,
			TierLevel:      tier.Level,
			TierName:       tier.Name,
			Winners:        winners,
			RemainingQuota: remaining,
			TotalWinners:   total,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"winner_count": len(winners),
		},
	}
}

// NewTierAdvancedEvent creates a tier advanced event
func NewTierAdvancedEvent(from, to domain.PrizeTier, tierIndex int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawTierAdvanced,
		Payload: TierAdvancedPayloadV1{
			FromLevel: from.Level,
			ToLevel:   to.Level,
			ToName:    to.Name,
			TierIndex: tierIndex,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDrawCompletedEvent creates a draw completed event
func NewDrawCompletedEvent(totalWinners, tierCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawCompleted,
		Payload: DrawCompletedPayloadV1{
			TotalWinners: totalWinners,
			TierCount:    tierCount,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewDrawResetEvent creates a reset event
func NewDrawResetEvent(cleared int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawReset,
		Payload: DrawResetPayloadV1{
			ClearedWinners: cleared,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewIntegrityViolationEvent creates an integrity violation event
func NewIntegrityViolationEvent(operation string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawIntegrityViolation,
		Payload: IntegrityViolationPayloadV1{
			Operation: operation,
			Error:     err.Error(),
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewConfigurationChangedEvent creates a configuration changed event
func NewConfigurationChangedEvent(kind string, participants, tiers int, mode domain.DrawMode) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawConfigurationChanged,
		Payload: ConfigurationChangedPayloadV1{
			Kind:             kind,
			ParticipantCount: participants,
			TierCount:        tiers,
			Mode:             mode,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"kind": kind,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
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

// Publish runs every subscriber of the event type synchronously.
// All handlers run even if some fail; their errors are combined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

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
