// Package announce posts committed winners to a Discord channel.
//
// Draw events are turned into embeds on the publishing goroutine and handed to
// a small worker pool, so a slow or unreachable Discord never holds up a draw.
// Failed sends are retried with backoff and finally written to a dead-letter file.
package announce

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/metrics"
	"github.com/osse101/PrizeDraw_Go/internal/worker"
)

// Sender is the part of a discordgo session the announcer needs
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config controls delivery
type Config struct {
	ChannelID      string
	Workers        int
	QueueSize      int
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// Announcer subscribes to draw events and posts winners
type Announcer struct {
	sender    Sender
	channelID string
	pool      *worker.Pool
	delivery  *event.ResilientPublisher
}

// NewSession opens a REST-only discordgo session for a bot token.
// Sending channel messages does not need the gateway connection.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

// New creates an announcer and starts its workers
func New(sender Sender, cfg Config) (*Announcer, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	a := &Announcer{
		sender:    sender,
		channelID: cfg.ChannelID,
		pool:      worker.NewPool(cfg.Workers, cfg.QueueSize),
	}

	bus := event.NewMemoryBus()
	bus.Subscribe(EventTypeDeliver, a.deliver)
	delivery, err := event.NewResilientPublisher(bus, cfg.MaxRetries, cfg.RetryDelay, cfg.DeadLetterPath)
	if err != nil {
		return nil, err
	}
	a.delivery = delivery

	a.pool.Start()
	return a, nil
}

// Register subscribes to the draw events that produce announcements
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.DrawWinnersCommitted, a.HandleEvent)
	bus.Subscribe(event.DrawCompleted, a.HandleEvent)
}

// HandleEvent builds the embed for evt and queues it. It never fails the publisher.
func (a *Announcer) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	embed, err := BuildEmbed(evt)
	if err != nil {
		log.Warn(LogMsgBadPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	if embed == nil {
		return nil
	}

	deliverEvt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    EventTypeDeliver,
		Payload: embed,
		Metadata: map[string]interface{}{
			"source": string(evt.Type),
		},
	}
	job := worker.JobFunc(func(jobCtx context.Context) error {
		a.delivery.PublishWithRetry(jobCtx, deliverEvt)
		return nil
	})
	if err := a.pool.TryEnqueue(job); err != nil {
		metrics.AnnouncementsFailed.Inc()
		log.Warn(LogMsgAnnouncementDropped, "event_type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgAnnouncementQueued, "event_type", evt.Type)
	return nil
}

func (a *Announcer) deliver(ctx context.Context, evt event.Event) error {
	embed, ok := evt.Payload.(*discordgo.MessageEmbed)
	if !ok {
		return fmt.Errorf(ErrMsgUnexpectedEmbed, evt.Payload)
	}

	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		metrics.AnnouncementsFailed.Inc()
		logger.FromContext(ctx).Warn(LogMsgAnnouncementFailed, "channel", a.channelID, "error", err)
		return fmt.Errorf(ErrMsgSendFailed, a.channelID, err)
	}

	metrics.AnnouncementsSent.Inc()
	logger.FromContext(ctx).Info(LogMsgAnnouncementSent, "channel", a.channelID, "title", embed.Title)
	return nil
}

// Close finishes queued announcements and stops retrying.
// Sends still failing when ctx expires end up in the dead-letter file.
func (a *Announcer) Close(ctx context.Context) error {
	a.pool.Stop()
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, shutdownGrace)
		defer cancel()
	}
	err := a.delivery.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// BuildEmbed renders the announcement for a draw event.
// It returns nil for events that are not announced.
func BuildEmbed(evt event.Event) (*discordgo.MessageEmbed, error) {
	switch evt.Type {
	case event.DrawWinnersCommitted:
		p, err := event.DecodePayload[event.WinnersCommittedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		if len(p.Winners) == 0 {
			return nil, nil
		}
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf(TitleWinnersFormat, p.TierName),
			Description: winnerLines(p),
			Color:       ColorWinners,
			Timestamp:   time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf(FooterWinnersFormat, p.RemainingQuota, p.TotalWinners),
			},
		}, nil

	case event.DrawCompleted:
		p, err := event.DecodePayload[event.DrawCompletedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return &discordgo.MessageEmbed{
			Title:       TitleComplete,
			Description: fmt.Sprintf(DescriptionComplete, p.TotalWinners, p.TierCount),
			Color:       ColorComplete,
			Timestamp:   time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		}, nil
	}
	return nil, nil
}

func winnerLines(p event.WinnersCommittedPayloadV1) string {
	var sb strings.Builder
	for i, w := range p.Winners {
		if i == MaxListedWinners {
			sb.WriteByte('\n')
			sb.WriteString(fmt.Sprintf(MoreWinnersFormat, len(p.Winners)-MaxListedWinners))
			break
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fmt.Sprintf(WinnerLineFormat, w.ParticipantName, w.ParticipantID))
	}
	return sb.String()
}
