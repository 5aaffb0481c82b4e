package streamerbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/worker"
)

// ActionSender is the part of Client the subscriber needs
type ActionSender interface {
	DoAction(ctx context.Context, actionName string, args map[string]string) error
}

// Subscriber turns ceremony milestones into overlay actions. Preview ticks
// are not forwarded. Actions are sent in publish order by a single worker,
// off the publishing goroutine.
type Subscriber struct {
	sender ActionSender
	bus    event.Bus
	pool   *worker.Pool
}

// NewSubscriber creates a new Streamer.bot event subscriber and starts its worker
func NewSubscriber(sender ActionSender, bus event.Bus) *Subscriber {
	pool := worker.NewPool(1, QueueSize)
	pool.Start()
	return &Subscriber{sender: sender, bus: bus, pool: pool}
}

// Close sends whatever is still queued and stops the worker
func (s *Subscriber) Close() {
	s.pool.Stop()
}

// Subscribe registers handlers for the milestone event types
func (s *Subscriber) Subscribe() {
	handlers := map[event.Type]func(event.Event) (string, map[string]string, error){
		event.DrawRollStarted:      rollStartedArgs,
		event.DrawWinnersCommitted: winnersCommittedArgs,
		event.DrawTierAdvanced:     tierAdvancedArgs,
		event.DrawCompleted:        drawCompletedArgs,
		event.DrawReset:            drawResetArgs,
	}

	types := make([]string, 0, len(handlers))
	for t, build := range handlers {
		s.bus.Subscribe(t, s.forward(build))
		types = append(types, string(t))
	}
	logger.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) forward(build func(event.Event) (string, map[string]string, error)) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		log := logger.FromContext(ctx)

		action, args, err := build(evt)
		if err != nil {
			log.Warn(LogMsgOverlayBadFormat, "event_type", evt.Type, "error", err)
			return nil
		}

		job := worker.JobFunc(func(ctx context.Context) error {
			// Streamer.bot being unavailable is expected, so this stays at debug
			if err := s.sender.DoAction(ctx, action, args); err != nil {
				logger.FromContext(ctx).Debug(LogMsgOverlayDelivery, "action", action, "error", err)
			}
			return nil
		})
		if err := s.pool.TryEnqueue(job); err != nil {
			log.Warn(LogMsgOverlayDelivery, "action", action, "error", err)
		}
		return nil
	}
}

func rollStartedArgs(evt event.Event) (string, map[string]string, error) {
	p, err := event.DecodePayload[event.RollStartedPayloadV1](evt.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", ErrMsgUnexpectedPayload, err)
	}
	return ActionRollStarted, map[string]string{
		"mode":            string(p.Mode),
		"tier_level":      itoa(p.TierLevel),
		"tier_name":       p.TierName,
		"remaining_quota": itoa(p.RemainingQuota),
		"eligible_count":  itoa(p.EligibleCount),
	}, nil
}

// winnersCommittedArgs flattens the winners into numbered args, since
// Streamer.bot actions only receive string arguments
func winnersCommittedArgs(evt event.Event) (string, map[string]string, error) {
	p, err := event.DecodePayload[event.WinnersCommittedPayloadV1](evt.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", ErrMsgUnexpectedPayload, err)
	}

	args := map[string]string{
		"mode":            string(p.Mode),
		"tier_level":      itoa(p.TierLevel),
		"tier_name":       p.TierName,
		"winner_count":    itoa(len(p.Winners)),
		"remaining_quota": itoa(p.RemainingQuota),
		"total_winners":   itoa(p.TotalWinners),
	}

	names := make([]string, 0, len(p.Winners))
	for i, w := range p.Winners {
		args[fmt.Sprintf("winner_%d", i+1)] = w.ParticipantName
		args[fmt.Sprintf("winner_%d_id", i+1)] = w.ParticipantID
		names = append(names, w.ParticipantName)
	}
	args["winners"] = strings.Join(names, ", ")

	return ActionWinnersCommitted, args, nil
}

func tierAdvancedArgs(evt event.Event) (string, map[string]string, error) {
	p, err := event.DecodePayload[event.TierAdvancedPayloadV1](evt.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", ErrMsgUnexpectedPayload, err)
	}
	return ActionTierAdvanced, map[string]string{
		"from_level": itoa(p.FromLevel),
		"to_level":   itoa(p.ToLevel),
		"to_name":    p.ToName,
		"tier_index": itoa(p.TierIndex),
	}, nil
}

func drawCompletedArgs(evt event.Event) (string, map[string]string, error) {
	p, err := event.DecodePayload[event.DrawCompletedPayloadV1](evt.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", ErrMsgUnexpectedPayload, err)
	}
	return ActionDrawCompleted, map[string]string{
		"total_winners": itoa(p.TotalWinners),
		"tier_count":    itoa(p.TierCount),
	}, nil
}

func drawResetArgs(evt event.Event) (string, map[string]string, error) {
	p, err := event.DecodePayload[event.DrawResetPayloadV1](evt.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", ErrMsgUnexpectedPayload, err)
	}
	return ActionDrawReset, map[string]string{
		"cleared_winners": itoa(p.ClearedWinners),
	}, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
