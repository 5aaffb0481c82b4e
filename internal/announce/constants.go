package announce

import (
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/event"
)

// EventTypeDeliver is the private event carrying a built embed to the sender
const EventTypeDeliver event.Type = "announce.deliver"

// Defaults
const (
	DefaultWorkers    = 1
	DefaultQueueSize  = 64
	DefaultMaxRetries = event.RetryMaxAttempts
	DefaultRetryDelay = event.RetryInitialDelay

	// MaxListedWinners caps the names in one embed, Discord rejects descriptions over 4096 chars
	MaxListedWinners = 40
)

// Embed colors
const (
	ColorWinners  = 0xf1c40f // Gold
	ColorComplete = 0x2ecc71 // Green
)

// Message templates
const (
	TitleWinnersFormat    = "🎉 %s"
	WinnerLineFormat      = "**%s** (%s)"
	MoreWinnersFormat     = "…and %d more"
	FooterWinnersFormat   = "%d left in this tier · %d winners so far"
	TitleComplete         = "🏁 Draw complete"
	DescriptionComplete   = "%d winners across %d prize tiers"
	ErrMsgUnexpectedEmbed = "unexpected announcement payload %T"
	ErrMsgSendFailed      = "send to channel %s: %w"
)

// Log messages
const (
	LogMsgAnnouncementQueued  = "Winner announcement queued"
	LogMsgAnnouncementDropped = "Winner announcement dropped"
	LogMsgAnnouncementSent    = "Winner announcement sent"
	LogMsgAnnouncementFailed  = "Winner announcement failed"
	LogMsgBadPayload          = "Unexpected payload for announcement"
)

const shutdownGrace = 5 * time.Second
