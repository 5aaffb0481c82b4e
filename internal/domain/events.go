package domain

// Event type constants used across the application for event bus subscriptions,
// SSE fan-out and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "draw.reset")
const (
	// EventTypeRollStarted is published when a rolling preview begins
	EventTypeRollStarted = "draw.roll_started"

	// EventTypePreview is published on every preview tick while rolling
	EventTypePreview = "draw.preview"

	// EventTypeWinnersCommitted is published after winners are appended to the ledger
	EventTypeWinnersCommitted = "draw.winners_committed"

	// EventTypeTierAdvanced is published when the session moves to the next tier
	EventTypeTierAdvanced = "draw.tier_advanced"

	// EventTypeDrawCompleted is published when the final tier has no slots left
	EventTypeDrawCompleted = "draw.completed"

	// EventTypeDrawReset is published after the ledger is cleared
	EventTypeDrawReset = "draw.reset"

	// EventTypeIntegrityViolation is published when the ledger is found corrupted
	EventTypeIntegrityViolation = "draw.integrity_violation"

	// EventTypeConfigurationChanged is published when the roster, tiers or mode change
	EventTypeConfigurationChanged = "draw.configuration_changed"
)
