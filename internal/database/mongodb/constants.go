package mongodb

import "time"

// Collection and document layout
const (
	SnapshotCollection = "draw_snapshots"
	FieldID            = "_id"
	FieldPayload       = "payload"
	FieldUpdatedAt     = "updatedAt"
)

// Connection settings
const (
	DefaultConnectTimeout = 10 * time.Second
)

// Error messages
const (
	ErrMsgFailedToConnect = "failed to connect to mongodb"
	ErrMsgFailedToPing    = "failed to ping mongodb"
	ErrContextSession     = "session %q: %w"
)

// Log messages
const (
	LogMsgConnected       = "Successfully connected to MongoDB"
	LogMsgSnapshotMissing = "No saved snapshot in MongoDB, starting empty session"
	LogMsgSnapshotSaved   = "Snapshot saved to MongoDB"
)
