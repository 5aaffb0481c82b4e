package domain

// Participant is a single roster entry eligible to win at most one prize
type Participant struct {
	ID   string `json:"id" validate:"required,max=128"`
	Name string `json:"name" validate:"required,max=256"`
}

// ParticipantIDs returns the ids of the given participants in order
func ParticipantIDs(participants []Participant) []string {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	return ids
}
