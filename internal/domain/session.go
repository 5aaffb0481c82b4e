package domain

import (
	"fmt"
	"strings"
	"time"
)

// DrawMode selects how winners of a tier are committed
type DrawMode string

const (
	// DrawModeSequential commits one winner per stop
	DrawModeSequential DrawMode = "sequential"
	// DrawModeBatch fills every remaining slot of the tier on stop
	DrawModeBatch DrawMode = "batch"

	// drawModeLegacySingle is how earlier saved sessions spell sequential mode
	drawModeLegacySingle = "single"
)

// ParseDrawMode converts user or persisted input into a DrawMode
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(DrawModeSequential), drawModeLegacySingle:
		return DrawModeSequential, nil
	case string(DrawModeBatch):
		return DrawModeBatch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDrawMode, s)
	}
}

// Phase is the transient rolling state of a session. It is never persisted.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRolling Phase = "rolling"
	PhaseSettled Phase = "settled"
)

// Snapshot is the persisted form of a draw session
type Snapshot struct {
	Participants []Participant  `json:"participants"`
	PrizeTiers   []PrizeTier    `json:"prizeTiers"`
	WinnerLedger []WinnerRecord `json:"winnerLedger"`
	TierIndex    int            `json:"tierIndex"`
	DrawMode     DrawMode       `json:"drawMode"`
	SavedAt      time.Time      `json:"savedAt,omitempty"`
}

// EmptySnapshot returns a fresh session with no roster, tiers or winners
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Participants: []Participant{},
		PrizeTiers:   []PrizeTier{},
		WinnerLedger: []WinnerRecord{},
		TierIndex:    0,
		DrawMode:     DrawModeSequential,
	}
}
