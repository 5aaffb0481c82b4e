package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/draw"
	"github.com/osse101/PrizeDraw_Go/internal/session"
)

func serve(h http.HandlerFunc, method, target, body, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func idleState() session.State {
	tier := domain.PrizeTier{Level: 2, Name: "First", Quota: 2}
	return session.State{
		Status: draw.Status{
			Mode:           domain.DrawModeSequential,
			CurrentTier:    &tier,
			RemainingQuota: 2,
			EligibleCount:  5,
		},
		Phase: domain.PhaseIdle,
	}
}

func winner(id string) domain.WinnerRecord {
	return domain.WinnerRecord{
		ParticipantID:   id,
		ParticipantName: "Name " + id,
		TierLevel:       2,
		TierName:        "First",
		Timestamp:       time.Date(2024, 12, 20, 20, 0, 0, 0, time.UTC),
	}
}

func TestHandleGetState(t *testing.T) {
	svc := &MockDrawService{}
	svc.On("State").Return(idleState())

	w := serve(NewDrawHandler(svc).HandleGetState, http.MethodGet, "/api/v1/draw/state", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"phase":"idle"`)
	assert.Contains(t, w.Body.String(), `"remainingQuota":2`)
}

func TestHandleStart(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockDrawService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "empty body uses session mode",
			setupMock: func(m *MockDrawService) {
				m.On("Start", mock.Anything).Return(nil)
				m.On("State").Return(idleState())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"phase":"idle"`,
		},
		{
			name: "batch mode",
			body: `{"mode":"batch"}`,
			setupMock: func(m *MockDrawService) {
				m.On("StartBatch", mock.Anything).Return(nil)
				m.On("State").Return(idleState())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "legacy single mode means sequential",
			body: `{"mode":"single"}`,
			setupMock: func(m *MockDrawService) {
				m.On("StartSequential", mock.Anything).Return(nil)
				m.On("State").Return(idleState())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown mode",
			body:           `{"mode":"turbo"}`,
			setupMock:      func(m *MockDrawService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"mode":"Must be sequential or batch"`,
		},
		{
			name:           "malformed json",
			body:           `{"mode":`,
			setupMock:      func(m *MockDrawService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "no eligible participants",
			setupMock: func(m *MockDrawService) {
				m.On("Start", mock.Anything).Return(domain.ErrNoEligibleParticipants)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   CodeNoEligible,
		},
		{
			name: "corrupted session",
			setupMock: func(m *MockDrawService) {
				m.On("Start", mock.Anything).Return(domain.ErrDuplicateWinnerDetected)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSessionCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDrawService{}
			tt.setupMock(svc)

			w := serve(NewDrawHandler(svc).HandleStart, http.MethodPost, "/api/v1/draw/start", tt.body, ContentTypeJSON)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleStop(t *testing.T) {
	t.Run("sequential commits one winner", func(t *testing.T) {
		svc := &MockDrawService{}
		rec := winner("E001")
		svc.On("StopSequential", mock.Anything).Return(&rec, nil)
		svc.On("State").Return(idleState())

		w := serve(NewDrawHandler(svc).HandleStop, http.MethodPost, "/api/v1/draw/stop", `{"mode":"sequential"}`, ContentTypeJSON)

		require.Equal(t, http.StatusOK, w.Code)
		var resp StopResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Winners, 1)
		assert.Equal(t, "E001", resp.Winners[0].ParticipantID)
	})

	t.Run("stop while idle returns no winners", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("Stop", mock.Anything).Return(nil, nil)
		svc.On("State").Return(idleState())

		w := serve(NewDrawHandler(svc).HandleStop, http.MethodPost, "/api/v1/draw/stop", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"winners":[]`)
	})

	t.Run("batch insufficient participants reports counts", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("StopBatch", mock.Anything).Return(nil, &domain.InsufficientParticipantsError{Eligible: 3, Required: 5})

		w := serve(NewDrawHandler(svc).HandleStop, http.MethodPost, "/api/v1/draw/stop", `{"mode":"batch"}`, ContentTypeJSON)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CodeInsufficient, resp.Code)
		assert.Equal(t, "Not enough eligible participants: 3 eligible, 5 required", resp.Error)
	})

	t.Run("mode mismatch", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("StopBatch", mock.Anything).Return(nil, domain.ErrDrawModeMismatch)

		w := serve(NewDrawHandler(svc).HandleStop, http.MethodPost, "/api/v1/draw/stop", `{"mode":"batch"}`, ContentTypeJSON)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), CodeModeMismatch)
	})
}

func TestHandleAdvance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("Advance", mock.Anything).Return(1, nil)
		svc.On("State").Return(idleState())

		w := serve(NewDrawHandler(svc).HandleAdvance, http.MethodPost, "/api/v1/draw/advance", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"tierIndex":1`)
	})

	t.Run("tier not exhausted", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("Advance", mock.Anything).Return(0, domain.ErrTierNotExhausted)

		w := serve(NewDrawHandler(svc).HandleAdvance, http.MethodPost, "/api/v1/draw/advance", "", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTierNotExhaustedUser)
	})

	t.Run("all tiers complete", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("Advance", mock.Anything).Return(2, domain.ErrAllTiersComplete)

		w := serve(NewDrawHandler(svc).HandleAdvance, http.MethodPost, "/api/v1/draw/advance", "", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), CodeAllTiersComplete)
	})
}

func TestHandleReset(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		confirmed      bool
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"confirmed", `{"confirm":true}`, true, nil, http.StatusOK, MsgSessionReset},
		{"not confirmed", `{"confirm":false}`, false, domain.ErrResetNotConfirmed, http.StatusBadRequest, CodeResetNotConfirmed},
		{"empty body is not a confirmation", "", false, domain.ErrResetNotConfirmed, http.StatusBadRequest, ErrMsgResetNotConfirmedUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDrawService{}
			svc.On("Reset", mock.Anything, tt.confirmed).Return(tt.err)

			w := serve(NewDrawHandler(svc).HandleReset, http.MethodPost, "/api/v1/draw/reset", tt.body, ContentTypeJSON)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleSetMode(t *testing.T) {
	t.Run("switch to batch", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("SetDrawMode", mock.Anything, domain.DrawModeBatch).Return(nil)
		svc.On("State").Return(idleState())

		w := serve(NewDrawHandler(svc).HandleSetMode, http.MethodPut, "/api/v1/draw/mode", `{"mode":"BATCH"}`, ContentTypeJSON)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("mode required", func(t *testing.T) {
		svc := &MockDrawService{}

		w := serve(NewDrawHandler(svc).HandleSetMode, http.MethodPut, "/api/v1/draw/mode", `{}`, ContentTypeJSON)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"mode":"This field is required"`)
		svc.AssertNotCalled(t, "SetDrawMode", mock.Anything, mock.Anything)
	})

	t.Run("refused while rolling", func(t *testing.T) {
		svc := &MockDrawService{}
		svc.On("SetDrawMode", mock.Anything, domain.DrawModeSequential).Return(domain.ErrRollInProgress)

		w := serve(NewDrawHandler(svc).HandleSetMode, http.MethodPut, "/api/v1/draw/mode", `{"mode":"sequential"}`, ContentTypeJSON)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), CodeRollInProgress)
	})
}
