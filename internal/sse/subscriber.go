package sse

import (
	"context"

	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every draw event to the hub
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.AllDrawTypes))
	for _, t := range event.AllDrawTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscriberReady, "types", types)
}

// forward broadcasts the typed payload unchanged; clients receive its JSON form
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	if evt.Type != event.DrawPreview {
		logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	}
	return nil
}
