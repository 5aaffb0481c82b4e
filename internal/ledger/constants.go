package ledger

// DefaultViewCacheSize bounds the number of memoised per-tier views
const DefaultViewCacheSize = 64

// Error context strings
const (
	ErrContextAppend       = "append rejected"
	ErrContextLoad         = "loaded ledger is inconsistent"
	ErrContextParticipant  = "participant %s"
	ErrContextTierOverflow = "tier %d has %d winners for quota %d"
	ErrContextUnknownTier  = "tier %d is not configured but has %d winners"
)
