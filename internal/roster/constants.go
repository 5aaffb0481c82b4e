package roster

// Field limits, matching the validate tags on domain.Participant
const (
	MaxIDLength   = 128
	MaxNameLength = 256
)

// Error context strings
const (
	ErrContextLine      = "line %d: %q"
	ErrContextFields    = "line %d: expected name and id separated by a comma or tab"
	ErrContextEmpty     = "line %d: name and id must not be empty"
	ErrContextDuplicate = "id %q on line %d already used on line %d"
	ErrContextEntry     = "entry %d"
)
