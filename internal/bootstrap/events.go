package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/PrizeDraw_Go/internal/announce"
	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/metrics"
	"github.com/osse101/PrizeDraw_Go/internal/sse"
	"github.com/osse101/PrizeDraw_Go/internal/streamerbot"
)

// EventHandlers are the optional bus subscribers that hold resources.
// Nil fields are disabled integrations.
type EventHandlers struct {
	Announcer  *announce.Announcer
	Overlay    *streamerbot.Client
	overlaySub *streamerbot.Subscriber
}

// InitializeEventSystem creates the in-process bus every draw event goes through
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	logger.Info(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers subscribes metrics and the SSE hub, then the Discord
// announcer and Streamer.bot overlay when they are configured
func RegisterEventHandlers(ctx context.Context, cfg *config.Config, bus event.Bus, hub *sse.Hub) (*EventHandlers, error) {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	logger.Info(LogMsgSSESubscriberRegistered)

	h := &EventHandlers{}

	if cfg.AnnouncerEnabled() {
		announcer, err := newAnnouncer(cfg)
		if err != nil {
			return nil, err
		}
		announcer.Register(bus)
		h.Announcer = announcer
		logger.Info(LogMsgAnnouncerRegistered,
			"channel_id", cfg.DiscordChannelID,
			"max_retries", cfg.EventMaxRetries,
			"retry_delay", cfg.EventRetryDelay,
			"deadletter_path", cfg.EventDeadLetterPath)
	} else {
		logger.Info(LogMsgAnnouncerDisabled)
	}

	if cfg.OverlayEnabled() {
		h.Overlay = streamerbot.NewClient(cfg.StreamerbotURL, cfg.StreamerbotPassword)
		h.Overlay.Start(ctx)
		h.overlaySub = streamerbot.NewSubscriber(h.Overlay, bus)
		h.overlaySub.Subscribe()
		logger.Info(LogMsgOverlayRegistered, "url", cfg.StreamerbotURL)
	} else {
		logger.Info(LogMsgOverlayDisabled)
	}

	return h, nil
}

func newAnnouncer(cfg *config.Config) (*announce.Announcer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	discord, err := announce.NewSession(cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
	}
	announcer, err := announce.New(discord, announce.Config{
		ChannelID:      cfg.DiscordChannelID,
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
	}
	return announcer, nil
}

// Close flushes pending announcements and overlay actions, then disconnects
func (h *EventHandlers) Close(ctx context.Context) error {
	if h == nil {
		return nil
	}

	var err error
	if h.Announcer != nil {
		logger.Info(LogMsgShuttingDownAnnouncer)
		err = h.Announcer.Close(ctx)
	}
	if h.overlaySub != nil {
		h.overlaySub.Close()
	}
	if h.Overlay != nil {
		h.Overlay.Stop()
	}
	return err
}
