package postgres

// History retention
const (
	// DefaultHistoryLimit is how many saved versions of a session are kept
	DefaultHistoryLimit = 50
)

// Error context strings
const (
	ErrContextSession = "session %q: %w"
)

// Log messages
const (
	LogMsgSnapshotMissing = "No saved snapshot in database, starting empty session"
	LogMsgSnapshotSaved   = "Snapshot saved to database"
	LogMsgRollbackFailed  = "Failed to rollback snapshot transaction"
)
