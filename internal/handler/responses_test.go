package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

func TestMapErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, CodeInternal, ErrMsgUnknownError},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, CodeInternal, ErrMsgGenericServerError},
		{"save failure is transient", fmt.Errorf("%w: disk full", domain.ErrSnapshotSave), http.StatusInternalServerError, CodeInternal, ErrMsgGenericServerError},
		{"duplicate winner", fmt.Errorf("check: %w", domain.ErrDuplicateWinnerDetected), http.StatusConflict, CodeSessionCorrupted, ErrMsgSessionCorrupted},
		{"negative quota", domain.ErrNegativeRemainingQuota, http.StatusConflict, CodeSessionCorrupted, ErrMsgSessionCorrupted},
		{"unreadable ledger", domain.ErrLedgerUnreadable, http.StatusConflict, CodeSessionCorrupted, ErrMsgSessionCorrupted},
		{"insufficient with counts", &domain.InsufficientParticipantsError{Eligible: 1, Required: 4}, http.StatusConflict, CodeInsufficient, "Not enough eligible participants: 1 eligible, 4 required"},
		{"insufficient bare", domain.ErrInsufficientParticipants, http.StatusConflict, CodeInsufficient, domain.ErrMsgInsufficientParticipants},
		{"tier exhausted", domain.ErrTierExhausted, http.StatusConflict, CodeTierExhausted, ErrMsgTierExhaustedUser},
		{"no eligible", domain.ErrNoEligibleParticipants, http.StatusConflict, CodeNoEligible, ErrMsgNoEligibleUser},
		{"invalid mode", fmt.Errorf("%w: %q", domain.ErrInvalidDrawMode, "x"), http.StatusBadRequest, CodeInvalidDrawMode, ErrMsgInvalidDrawModeUser},
		{"no tiers", domain.ErrNoPrizeTiers, http.StatusBadRequest, CodeInvalidPrizeTiers, ErrMsgNoPrizeTiersUser},
		{"roster line", fmt.Errorf("%w: line 3: missing id", domain.ErrInvalidRosterLine), http.StatusBadRequest, CodeInvalidRoster, "invalid roster line: line 3: missing id"},
		{"empty roster", domain.ErrRosterEmpty, http.StatusBadRequest, CodeInvalidRoster, domain.ErrMsgRosterEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := mapErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantStatus, statusForError(tt.err))
		})
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
