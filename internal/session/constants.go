package session

import "time"

// Default preview intervals
const (
	DefaultSequentialInterval = 50 * time.Millisecond
	DefaultBatchInterval      = 80 * time.Millisecond
)

// Integrity violation operations, reported on draw.integrity_violation
const (
	OperationStart   = "start"
	OperationCommit  = "commit"
	OperationAdvance = "advance"
	OperationLoad    = "load"
)

// Error context strings
const (
	ErrContextStart     = "cannot start %s roll in %s mode"
	ErrContextStop      = "cannot stop %s roll while rolling in %s mode"
	ErrContextRosterSet = "roster not imported"
	ErrContextTiersSet  = "prize tiers not configured"
)

// Log messages
const (
	LogMsgRollStarted        = "Roll started"
	LogMsgRollStopped        = "Roll stopped, winners committed"
	LogMsgRollAborted        = "Roll stopped without a commit"
	LogMsgTierAdvanced       = "Advanced to next prize tier"
	LogMsgDrawCompleted      = "All prize tiers drawn"
	LogMsgSessionReset       = "Draw session reset"
	LogMsgModeChanged        = "Draw mode changed"
	LogMsgRosterImported     = "Roster imported"
	LogMsgTiersConfigured    = "Prize tiers configured"
	LogMsgQuotaExceedsRoster = "Total prize quota exceeds roster size, some tiers cannot be filled"
	LogMsgSnapshotSaveFailed = "Failed to save draw snapshot"
	LogMsgPublishFailed      = "Failed to publish draw event"
	LogMsgControllerClosed   = "Draw controller closed"
)
