package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

func TestHandleGetRoster(t *testing.T) {
	svc := &MockDrawService{}
	svc.On("Participants").Return([]domain.Participant{{ID: "E001", Name: "Alice"}})

	w := serve(NewRosterHandler(svc).HandleGetRoster, http.MethodGet, "/api/v1/roster", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp RosterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Alice", resp.Participants[0].Name)
}

func TestHandlePutRoster(t *testing.T) {
	parsed := []domain.Participant{{ID: "E001", Name: "Alice"}, {ID: "E002", Name: "Bob"}}

	tests := []struct {
		name           string
		body           string
		contentType    string
		setupMock      func(*MockDrawService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "json text",
			body:        `{"text":"Alice,E001\nBob,E002"}`,
			contentType: ContentTypeJSON,
			setupMock: func(m *MockDrawService) {
				m.On("ImportParticipants", mock.Anything, parsed).Return(nil)
				m.On("Participants").Return(parsed)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name:        "plain text body",
			body:        "Alice\tE001\nBob，E002\n",
			contentType: "text/plain; charset=utf-8",
			setupMock: func(m *MockDrawService) {
				m.On("ImportParticipants", mock.Anything, parsed).Return(nil)
				m.On("Participants").Return(parsed)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"E002"`,
		},
		{
			name:        "participant list",
			body:        `{"participants":[{"id":"E001","name":"Alice"}]}`,
			contentType: ContentTypeJSON,
			setupMock: func(m *MockDrawService) {
				m.On("ImportParticipants", mock.Anything, []domain.Participant{{ID: "E001", Name: "Alice"}}).Return(nil)
				m.On("Participants").Return([]domain.Participant{{ID: "E001", Name: "Alice"}})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":1`,
		},
		{
			name:           "bad line names the line",
			body:           "Alice,E001\nBob",
			contentType:    ContentTypeText,
			setupMock:      func(m *MockDrawService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "line 2",
		},
		{
			name:           "neither text nor participants",
			body:           `{}`,
			contentType:    ContentTypeJSON,
			setupMock:      func(m *MockDrawService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"text":"This field is required"`,
		},
		{
			name:           "participant missing id",
			body:           `{"participants":[{"id":"","name":"Alice"}]}`,
			contentType:    ContentTypeJSON,
			setupMock:      func(m *MockDrawService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"participants[0].id":"This field is required"`,
		},
		{
			name:        "import refused while rolling",
			body:        `{"text":"Alice,E001\nBob,E002"}`,
			contentType: ContentTypeJSON,
			setupMock: func(m *MockDrawService) {
				m.On("ImportParticipants", mock.Anything, parsed).Return(domain.ErrRollInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   CodeRollInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDrawService{}
			tt.setupMock(svc)

			w := serve(NewRosterHandler(svc).HandlePutRoster, http.MethodPut, "/api/v1/roster", tt.body, tt.contentType)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
