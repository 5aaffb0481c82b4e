package draw

// Error context strings
const (
	ErrContextTierQuota = "tier %d has %d winners for quota %d"
	ErrContextRemaining = "tier %d has %d slots left"
	ErrContextBlocked   = "session is blocked until reset"
	ErrContextCommit    = "commit refused"
)

// Log messages
const (
	LogMsgIntegrityViolation = "Winner ledger integrity violation detected"
	LogMsgSessionLoaded      = "Draw session loaded"
	LogMsgSessionBlocked     = "Draw session blocked by corrupted ledger"
	LogMsgTierQuotaChanged   = "Prize tiers replaced"
)
