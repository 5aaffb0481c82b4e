package snapshot

// Log messages
const (
	LogMsgFieldDefaulted   = "Snapshot field unreadable, using default"
	LogMsgElementSkipped   = "Snapshot element unreadable, skipped"
	LogMsgLedgerUnreadable = "Snapshot winner ledger unreadable"
	LogMsgSnapshotMissing  = "No saved snapshot, starting empty session"
	LogMsgSnapshotSaved    = "Snapshot saved"
	LogMsgSnapshotDeleted  = "Snapshot deleted"
)

// Error context strings
const (
	ErrContextRecord   = "record %d: %v"
	ErrContextDocument = "document: %v"
	ErrContextField    = "field %s: %v"
	ErrContextPath     = "path %s: %w"
)

// File store settings
const (
	FilePermissions = 0o600
	DirPermissions  = 0o750
	TempFilePattern = ".snapshot-*.tmp"
)
