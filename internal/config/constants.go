package config

import "time"

// Storage backends
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
	StorageBackendMongo    = "mongo"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "prize-draw"
	DefaultVersion     = "dev"

	DefaultSnapshotPath = "data/draw_snapshot.json"
	DefaultSessionKey   = "default"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDatabase = "prizedraw"

	DefaultPreviewIntervalSequential = 50 * time.Millisecond
	DefaultPreviewIntervalBatch      = 80 * time.Millisecond

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"

	DefaultMaxRequestBytes int64 = 1 << 20
)
