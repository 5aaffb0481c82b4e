package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "ceremony_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, the new one included
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting prize draw"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// StorageConnectTimeout bounds connecting to and migrating a database backend
	StorageConnectTimeout = 30 * time.Second

	// BackendNamePostgres and BackendNameMongo label readiness checks
	BackendNamePostgres = "postgres"
	BackendNameMongo    = "mongo"
)

const (
	LogMsgStorageReady          = "Snapshot storage ready"
	LogMsgSnapshotLoaded        = "Snapshot loaded"
	LogMsgSnapshotCorrupt       = "Snapshot ledger unreadable, session blocked until reset"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to run migrations"
	ErrMsgFailedConnectMongo    = "failed to connect to mongodb"
	ErrMsgFailedLoadSnapshot    = "failed to load snapshot"
	ErrMsgUnknownBackend        = "unknown storage backend"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgAnnouncerRegistered        = "Discord announcer registered"
	LogMsgAnnouncerDisabled          = "Discord announcer disabled, DISCORD_TOKEN or DISCORD_CHANNEL_ID not set"
	LogMsgOverlayRegistered          = "Streamer.bot overlay registered"
	LogMsgOverlayDisabled            = "Streamer.bot overlay disabled, STREAMERBOT_URL not set"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedCreateAnnouncer      = "failed to create announcer"
)

// =============================================================================
// Session Seeding
// =============================================================================

// RosterJSONExtension marks a roster file holding a JSON participant list
const RosterJSONExtension = ".json"

const (
	LogMsgSeedingRoster       = "Seeding roster from file"
	LogMsgSeedingPrizes       = "Seeding prize tiers from file"
	LogMsgSeedingPresets      = "No prize tiers configured, applying presets"
	LogMsgSeedSkipped         = "Session already configured, seeding skipped"
	LogMsgSeedBlocked         = "Session blocked by an integrity error, seeding skipped"
	ErrMsgFailedReadRoster    = "failed to read roster file"
	ErrMsgFailedReadPrizes    = "failed to read prize file"
	ErrMsgFailedImportRoster  = "failed to import roster"
	ErrMsgFailedConfigureTier = "failed to configure prize tiers"
)

// =============================================================================
// Session Reset
// =============================================================================

const (
	LogMsgSessionReset     = "Session reset"
	LogMsgSessionPurged    = "Session purged"
	ErrMsgPurgeUnsupported = "storage backend cannot purge sessions"
	ErrMsgFailedPurge      = "failed to purge session"
	ErrMsgFailedReset      = "failed to reset session"
	ErrMsgResetNotSaved    = "session was reset in memory but could not be saved"
	ErrMsgResetUnreadable  = "stored session is not readable, refusing to overwrite it (use -purge to discard it)"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer     = "Shutting down server..."
	LogMsgShuttingDownController = "Stopping draw controller..."
	LogMsgShuttingDownAnnouncer  = "Flushing announcements..."
	LogMsgShuttingDownHandlers   = "Stopping event handlers..."
	LogMsgServerStopped          = "Server stopped"
	LogMsgServerForcedShutdown   = "Server forced to shutdown"
	LogMsgHandlersFailed         = "Event handler shutdown failed"
	LogMsgStorageCloseFailed     = "Storage close failed"
)
