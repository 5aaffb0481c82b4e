package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// EventMetricsCollector subscribes to draw events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all draw events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllDrawTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DrawRollStarted:
		p, err := event.DecodePayload[event.RollStartedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		RollsStarted.WithLabelValues(string(p.Mode)).Inc()
		RemainingQuota.Set(float64(p.RemainingQuota))

	case event.DrawPreview:
		PreviewTicks.Inc()
		// Preview ticks are frequent, skip the debug log
		return nil

	case event.DrawWinnersCommitted:
		p, err := event.DecodePayload[event.WinnersCommittedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		WinnersCommitted.WithLabelValues(strconv.Itoa(p.TierLevel), string(p.Mode)).Add(float64(len(p.Winners)))
		RemainingQuota.Set(float64(p.RemainingQuota))
		TotalWinners.Set(float64(p.TotalWinners))

	case event.DrawTierAdvanced:
		TierAdvances.Inc()

	case event.DrawCompleted:
		DrawsCompleted.Inc()
		RemainingQuota.Set(0)

	case event.DrawReset:
		Resets.Inc()
		TotalWinners.Set(0)

	case event.DrawIntegrityViolation:
		p, err := event.DecodePayload[event.IntegrityViolationPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		IntegrityViolations.WithLabelValues(p.Operation).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// unexpected counts a payload that could not be decoded without failing the publish
func (e *EventMetricsCollector) unexpected(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
	return nil
}
