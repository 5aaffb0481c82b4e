package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Routes
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/"
	PathEvents  = "/api/v1/events"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	PathSwagger,
	PathHealthz,
	PathReadyz,
	PathMetrics,
	PathVersion,
}

// QueryParamAPIKey authenticates the event stream. Browsers cannot set
// headers on an EventSource.
const QueryParamAPIKey = "api_key"

// Rate limiting and alerting
const (
	ActivityWindow         = 5 * time.Minute
	MaxRequestsPerWindow   = 3000
	FailedAuthAlertAfter   = 5
	HighRateLogEvery       = 100
	ReadHeaderTimeout      = 5 * time.Second
	IdleTimeout            = 2 * time.Minute
	DefaultMaxRequestBytes = 1 << 20
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
