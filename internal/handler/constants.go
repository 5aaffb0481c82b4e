package handler

import "time"

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLevel          = "Invalid level parameter"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
)

// User-facing messages for draw errors
const (
	ErrMsgSessionCorrupted       = "Session corrupted, reset required"
	ErrMsgRollInProgressUser     = "A roll is in progress. Stop it first."
	ErrMsgModeMismatchUser       = "The roll in progress uses a different draw mode"
	ErrMsgNoEligibleUser         = "Everyone has already won, no eligible participants remain"
	ErrMsgTierExhaustedUser      = "This prize tier is full. Advance to the next tier."
	ErrMsgInsufficientUserFormat = "Not enough eligible participants: %d eligible, %d required"
	ErrMsgTierNotExhaustedUser   = "This prize tier still has slots to draw"
	ErrMsgAllTiersCompleteUser   = "All prize tiers have been drawn"
	ErrMsgInvalidDrawModeUser    = "Draw mode must be sequential or batch"
	ErrMsgResetNotConfirmedUser  = "Reset must be confirmed"
	ErrMsgNoPrizeTiersUser       = "Configure at least one prize tier"
)

// Machine-readable error codes for the ceremony UI
const (
	CodeInvalidRequest    = "invalid_request"
	CodeSessionCorrupted  = "session_corrupted"
	CodeRollInProgress    = "roll_in_progress"
	CodeModeMismatch      = "draw_mode_mismatch"
	CodeNoEligible        = "no_eligible_participants"
	CodeTierExhausted     = "tier_exhausted"
	CodeInsufficient      = "insufficient_participants"
	CodeTierNotExhausted  = "tier_not_exhausted"
	CodeAllTiersComplete  = "all_tiers_complete"
	CodeInvalidDrawMode   = "invalid_draw_mode"
	CodeResetNotConfirmed = "reset_not_confirmed"
	CodeInvalidRoster     = "invalid_roster"
	CodeInvalidPrizeTiers = "invalid_prize_tiers"
	CodeInternal          = "internal_error"
)

// Success messages
const (
	MsgSessionReset = "Draw session reset"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgDrawActionFailed   = "Draw action failed"
	LogMsgDrawActionRejected = "Draw action rejected"
	LogMsgIntegrityFailure   = "Draw action blocked by corrupted session"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgExportWritten      = "Results exported"
)

// Query parameters and content types
const (
	QueryParamLevel     = "level"
	ContentTypeJSON     = "application/json"
	ContentTypeText     = "text/plain"
	ContentTypeCSV      = "text/csv; charset=utf-8"
	ExportFileName      = "draw_results.csv"
	ExportTimeLayout    = time.RFC3339
	ReadinessTimeout    = 2 * time.Second
	responseBufferBytes = 512
)

// CSV export columns
var ExportHeader = []string{"tier_level", "tier_name", "participant_id", "participant_name", "timestamp"}
