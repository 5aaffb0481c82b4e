package streamerbot

import "time"

// Default configuration values
const (
	// DefaultReconnectDelay is the initial delay before attempting to reconnect
	DefaultReconnectDelay = 1 * time.Second

	// MaxReconnectDelay is the maximum delay between reconnection attempts
	MaxReconnectDelay = 30 * time.Second

	// ReconnectMultiplier is the multiplier for exponential backoff
	ReconnectMultiplier = 2.0

	// MaxConsecutiveFailures is the number of failed dials before going dormant
	MaxConsecutiveFailures = 10

	// HelloTimeout bounds waiting for the optional auth challenge after dialing
	HelloTimeout = 2 * time.Second

	// WriteTimeout is the timeout for writing messages
	WriteTimeout = 10 * time.Second

	ReadBufferSize  = 4096
	WriteBufferSize = 4096

	// QueueSize bounds overlay actions waiting to be sent
	QueueSize = 64
)

// Request types for the Streamer.bot WebSocket API
const (
	RequestDoAction     = "DoAction"
	RequestAuthenticate = "Authenticate"
)

// Overlay actions triggered by the ceremony. Each must exist in Streamer.bot.
const (
	ActionRollStarted      = "PrizeDraw_RollStarted"
	ActionWinnersCommitted = "PrizeDraw_WinnersCommitted"
	ActionTierAdvanced     = "PrizeDraw_TierAdvanced"
	ActionDrawCompleted    = "PrizeDraw_DrawCompleted"
	ActionDrawReset        = "PrizeDraw_DrawReset"
)

// Response status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Error messages
const (
	ErrMsgDormant           = "Streamer.bot is dormant, reconnection triggered"
	ErrMsgNotConnected      = "not connected to Streamer.bot"
	ErrMsgPasswordRequired  = "password required but not configured"
	ErrMsgAuthRejected      = "auth rejected"
	ErrMsgConnectFailed     = "failed to connect"
	ErrMsgAuthFailed        = "authentication failed"
	ErrMsgUnexpectedPayload = "unexpected payload"
)

// Log messages
const (
	LogMsgConnecting       = "Connecting to Streamer.bot WebSocket"
	LogMsgConnected        = "Connected to Streamer.bot WebSocket"
	LogMsgConnRestored     = "Streamer.bot connection restored"
	LogMsgReconnecting     = "Reconnecting to Streamer.bot WebSocket"
	LogMsgNoHello          = "No initial message from Streamer.bot, assuming no auth required"
	LogMsgAuthRequired     = "Streamer.bot requires authentication"
	LogMsgAuthSuccess      = "Streamer.bot authentication successful"
	LogMsgSendingAction    = "Sending DoAction to Streamer.bot"
	LogMsgActionSent       = "DoAction sent to Streamer.bot"
	LogMsgActionFailed     = "Failed to send DoAction to Streamer.bot"
	LogMsgActionRejected   = "Streamer.bot rejected DoAction"
	LogMsgReadError        = "Error reading from Streamer.bot WebSocket"
	LogMsgClientStopped    = "Streamer.bot client stopped"
	LogMsgGivingUp         = "Streamer.bot connection failed too many times, entering dormant mode"
	LogMsgDormantRetry     = "Streamer.bot dormant, retrying connection due to incoming event"
	LogMsgWaking           = "Streamer.bot waking from dormant mode"
	LogMsgSubscriberReady  = "Streamer.bot subscriber registered"
	LogMsgOverlayDelivery  = "Overlay action not delivered"
	LogMsgOverlayBadFormat = "Unexpected draw event payload"
)
