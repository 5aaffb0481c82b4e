package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferBytes))
	},
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before the header is written so an encode failure
// still produces a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError logs err at the level its class deserves and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	log := logger.FromContext(r.Context())
	switch {
	case domain.IsDataIntegrity(err):
		log.Error(LogMsgIntegrityFailure, "action", action, "error", err)
	case domain.IsUserActionable(err):
		log.Info(LogMsgDrawActionRejected, "action", action, "reason", err.Error())
	default:
		log.Error(LogMsgDrawActionFailed, "action", action, "error", err)
	}

	status, code, msg := mapErrorToUserMessage(err)
	respondError(w, status, code, msg)
}

// statusForError returns the HTTP status for a service error
func statusForError(err error) int {
	status, _, _ := mapErrorToUserMessage(err)
	return status
}

// mapErrorToUserMessage converts draw errors to a status, a stable code and a
// message the operator can act on. Unknown errors become a generic 500.
func mapErrorToUserMessage(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, CodeInternal, ErrMsgUnknownError
	}

	// Corruption wins over anything else in the chain
	if domain.IsDataIntegrity(err) {
		return http.StatusConflict, CodeSessionCorrupted, ErrMsgSessionCorrupted
	}

	var insufficient *domain.InsufficientParticipantsError
	switch {
	case errors.As(err, &insufficient):
		return http.StatusConflict, CodeInsufficient,
			fmt.Sprintf(ErrMsgInsufficientUserFormat, insufficient.Eligible, insufficient.Required)
	case errors.Is(err, domain.ErrInsufficientParticipants):
		return http.StatusConflict, CodeInsufficient, domain.ErrMsgInsufficientParticipants
	case errors.Is(err, domain.ErrRollInProgress):
		return http.StatusConflict, CodeRollInProgress, ErrMsgRollInProgressUser
	case errors.Is(err, domain.ErrDrawModeMismatch):
		return http.StatusConflict, CodeModeMismatch, ErrMsgModeMismatchUser
	case errors.Is(err, domain.ErrNoEligibleParticipants):
		return http.StatusConflict, CodeNoEligible, ErrMsgNoEligibleUser
	case errors.Is(err, domain.ErrTierExhausted):
		return http.StatusConflict, CodeTierExhausted, ErrMsgTierExhaustedUser
	case errors.Is(err, domain.ErrTierNotExhausted):
		return http.StatusConflict, CodeTierNotExhausted, ErrMsgTierNotExhaustedUser
	case errors.Is(err, domain.ErrAllTiersComplete):
		return http.StatusConflict, CodeAllTiersComplete, ErrMsgAllTiersCompleteUser
	case errors.Is(err, domain.ErrInvalidDrawMode):
		return http.StatusBadRequest, CodeInvalidDrawMode, ErrMsgInvalidDrawModeUser
	case errors.Is(err, domain.ErrResetNotConfirmed):
		return http.StatusBadRequest, CodeResetNotConfirmed, ErrMsgResetNotConfirmedUser
	case errors.Is(err, domain.ErrNoPrizeTiers):
		return http.StatusBadRequest, CodeInvalidPrizeTiers, ErrMsgNoPrizeTiersUser
	case errors.Is(err, domain.ErrRosterEmpty),
		errors.Is(err, domain.ErrInvalidRosterLine),
		errors.Is(err, domain.ErrDuplicateParticipantID):
		// Ingestion errors name the offending line, which is what the operator needs
		return http.StatusBadRequest, CodeInvalidRoster, err.Error()
	case errors.Is(err, domain.ErrInvalidPrizeTier),
		errors.Is(err, domain.ErrDuplicateTierLevel):
		return http.StatusBadRequest, CodeInvalidPrizeTiers, err.Error()
	}

	return http.StatusInternalServerError, CodeInternal, ErrMsgGenericServerError
}
