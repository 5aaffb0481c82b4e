package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draw errors the operator can act on
	ErrMsgNoEligibleParticipants   = "no eligible participants remain"
	ErrMsgTierExhausted            = "current prize tier has no remaining slots"
	ErrMsgInsufficientParticipants = "not enough eligible participants to fill the tier"
	ErrMsgTierNotExhausted         = "current prize tier still has remaining slots"
	ErrMsgAllTiersComplete         = "all prize tiers have been drawn"

	// Session errors
	ErrMsgRollInProgress    = "a roll is in progress"
	ErrMsgDrawModeMismatch  = "draw mode does not match the requested roll"
	ErrMsgInvalidDrawMode   = "invalid draw mode"
	ErrMsgResetNotConfirmed = "reset must be explicitly confirmed"

	// Roster and prize configuration errors
	ErrMsgRosterEmpty            = "roster contains no participants"
	ErrMsgInvalidRosterLine      = "invalid roster line"
	ErrMsgDuplicateParticipantID = "duplicate participant id"
	ErrMsgInvalidPrizeTier       = "invalid prize tier"
	ErrMsgDuplicateTierLevel     = "duplicate prize tier level"
	ErrMsgNoPrizeTiers           = "no prize tiers configured"

	// Ledger integrity errors
	ErrMsgNegativeRemainingQuota  = "remaining quota is negative"
	ErrMsgDuplicateWinnerDetected = "participant appears more than once in the winner ledger"
	ErrMsgLedgerQuotaOverflow     = "winner ledger exceeds tier quota"
	ErrMsgLedgerUnreadable        = "winner ledger could not be decoded"
	ErrMsgSnapshotUnreadable      = "snapshot document is not valid JSON"

	// Storage errors
	ErrMsgSnapshotLoad = "failed to load snapshot"
	ErrMsgSnapshotSave = "failed to save snapshot"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoEligibleParticipants   = errors.New(ErrMsgNoEligibleParticipants)
	ErrTierExhausted            = errors.New(ErrMsgTierExhausted)
	ErrInsufficientParticipants = errors.New(ErrMsgInsufficientParticipants)
	ErrTierNotExhausted         = errors.New(ErrMsgTierNotExhausted)
	ErrAllTiersComplete         = errors.New(ErrMsgAllTiersComplete)

	ErrRollInProgress    = errors.New(ErrMsgRollInProgress)
	ErrDrawModeMismatch  = errors.New(ErrMsgDrawModeMismatch)
	ErrInvalidDrawMode   = errors.New(ErrMsgInvalidDrawMode)
	ErrResetNotConfirmed = errors.New(ErrMsgResetNotConfirmed)

	ErrRosterEmpty            = errors.New(ErrMsgRosterEmpty)
	ErrInvalidRosterLine      = errors.New(ErrMsgInvalidRosterLine)
	ErrDuplicateParticipantID = errors.New(ErrMsgDuplicateParticipantID)
	ErrInvalidPrizeTier       = errors.New(ErrMsgInvalidPrizeTier)
	ErrDuplicateTierLevel     = errors.New(ErrMsgDuplicateTierLevel)
	ErrNoPrizeTiers           = errors.New(ErrMsgNoPrizeTiers)

	ErrNegativeRemainingQuota  = errors.New(ErrMsgNegativeRemainingQuota)
	ErrDuplicateWinnerDetected = errors.New(ErrMsgDuplicateWinnerDetected)
	ErrLedgerQuotaOverflow     = errors.New(ErrMsgLedgerQuotaOverflow)
	ErrLedgerUnreadable        = errors.New(ErrMsgLedgerUnreadable)

	// ErrSnapshotUnreadable always travels with ErrLedgerUnreadable. Nothing in
	// the stored document, roster and tiers included, could be recovered.
	ErrSnapshotUnreadable = errors.New(ErrMsgSnapshotUnreadable)

	ErrSnapshotLoad = errors.New(ErrMsgSnapshotLoad)
	ErrSnapshotSave = errors.New(ErrMsgSnapshotSave)
)

// InsufficientParticipantsError reports both sides of a failed batch precondition
type InsufficientParticipantsError struct {
	Eligible int
	Required int
}

func (e *InsufficientParticipantsError) Error() string {
	return fmt.Sprintf("%s: eligible=%d, required=%d", ErrMsgInsufficientParticipants, e.Eligible, e.Required)
}

func (e *InsufficientParticipantsError) Unwrap() error {
	return ErrInsufficientParticipants
}

var userActionableErrors = []error{
	ErrNoEligibleParticipants,
	ErrTierExhausted,
	ErrInsufficientParticipants,
	ErrTierNotExhausted,
	ErrAllTiersComplete,
	ErrRollInProgress,
	ErrDrawModeMismatch,
	ErrInvalidDrawMode,
	ErrResetNotConfirmed,
	ErrRosterEmpty,
	ErrInvalidRosterLine,
	ErrDuplicateParticipantID,
	ErrInvalidPrizeTier,
	ErrDuplicateTierLevel,
	ErrNoPrizeTiers,
}

var dataIntegrityErrors = []error{
	ErrNegativeRemainingQuota,
	ErrDuplicateWinnerDetected,
	ErrLedgerQuotaOverflow,
	ErrLedgerUnreadable,
}

// IsUserActionable reports whether err is an expected condition the operator
// resolves with a new intent. These are never logged as faults.
func IsUserActionable(err error) bool {
	return matchesAny(err, userActionableErrors)
}

// IsDataIntegrity reports whether err signals a corrupted ledger.
// The session refuses further mutation until it is reset.
func IsDataIntegrity(err error) bool {
	return matchesAny(err, dataIntegrityErrors)
}

func matchesAny(err error, targets []error) bool {
	if err == nil {
		return false
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
