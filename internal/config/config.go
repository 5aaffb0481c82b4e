package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogSource   bool
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Snapshot storage
	StorageBackend string
	SnapshotPath   string
	SessionKey     string

	// Postgres backend
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Mongo backend
	MongoURI      string
	MongoDatabase string

	// Draw behaviour
	PreviewIntervalSequential time.Duration
	PreviewIntervalBatch      time.Duration
	DrawSeed                  int64

	// Session seeding, applied only while the session is unconfigured
	RosterFile  string
	PrizesFile  string
	SeedPresets bool

	// Discord announcer, enabled when both are set
	DiscordToken     string
	DiscordChannelID string

	// Streamer.bot overlay, enabled when the URL is set
	StreamerbotURL      string
	StreamerbotPassword string

	// Announcement delivery
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	MaxRequestBytes int64
	TrustedProxies  []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine, real env vars may be set instead
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogSource:   getEnvAsBool("LOG_ADD_SOURCE", false),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendFile)),
		SnapshotPath:   getEnv("SNAPSHOT_PATH", DefaultSnapshotPath),
		SessionKey:     getEnv("SESSION_KEY", DefaultSessionKey),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "prizedraw"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MongoURI:      getEnv("MONGO_URI", DefaultMongoURI),
		MongoDatabase: getEnv("MONGO_DATABASE", DefaultMongoDatabase),

		PreviewIntervalSequential: getEnvAsDuration("PREVIEW_INTERVAL_SEQUENTIAL", DefaultPreviewIntervalSequential),
		PreviewIntervalBatch:      getEnvAsDuration("PREVIEW_INTERVAL_BATCH", DefaultPreviewIntervalBatch),
		DrawSeed:                  getEnvAsInt64("DRAW_SEED", 0),

		RosterFile:  getEnv("ROSTER_FILE", ""),
		PrizesFile:  getEnv("PRIZES_FILE", ""),
		SeedPresets: getEnvAsBool("SEED_PRESETS", true),

		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),

		StreamerbotURL:      getEnv("STREAMERBOT_URL", ""),
		StreamerbotPassword: getEnv("STREAMERBOT_PASSWORD", ""),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		MaxRequestBytes: getEnvAsInt64("MAX_REQUEST_BYTES", DefaultMaxRequestBytes),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would make the server unusable
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch c.StorageBackend {
	case StorageBackendFile:
		if c.SnapshotPath == "" {
			return fmt.Errorf("SNAPSHOT_PATH must be set for the file storage backend")
		}
	case StorageBackendPostgres, StorageBackendMongo:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected file, postgres or mongo", c.StorageBackend)
	}

	if c.SessionKey == "" {
		return fmt.Errorf("SESSION_KEY must not be empty")
	}
	if c.PreviewIntervalSequential <= 0 || c.PreviewIntervalBatch <= 0 {
		return fmt.Errorf("preview intervals must be positive")
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be positive")
	}
	return nil
}

// AnnouncerEnabled reports whether Discord announcements are configured
func (c *Config) AnnouncerEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// OverlayEnabled reports whether a Streamer.bot overlay is configured
func (c *Config) OverlayEnabled() bool {
	return c.StreamerbotURL != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
