package prize

// Preset tier names
const (
	PresetGrand  = "Grand Prize"
	PresetFirst  = "First Prize"
	PresetSecond = "Second Prize"
	PresetThird  = "Third Prize"
	PresetLucky  = "Lucky Draw"
)

// Error context strings
const (
	ErrContextTier  = "tier %d: %s"
	ErrContextLevel = "level %d"
)
