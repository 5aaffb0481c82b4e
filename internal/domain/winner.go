package domain

import "time"

// WinnerRecord is a committed assignment of a participant to a prize tier.
// ParticipantName and TierName are denormalised for results display and export.
type WinnerRecord struct {
	ParticipantID   string    `json:"participantId"`
	ParticipantName string    `json:"participantName,omitempty"`
	TierLevel       int       `json:"tierLevel"`
	TierName        string    `json:"tierName,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewWinnerRecord builds the ledger entry for a participant winning a tier
func NewWinnerRecord(p Participant, tier PrizeTier, at time.Time) WinnerRecord {
	return WinnerRecord{
		ParticipantID:   p.ID,
		ParticipantName: p.Name,
		TierLevel:       tier.Level,
		TierName:        tier.Name,
		Timestamp:       at.UTC(),
	}
}
