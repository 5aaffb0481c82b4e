package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/roster"
)

// RosterHandler serves participant import
type RosterHandler struct {
	service DrawService
}

// NewRosterHandler creates a RosterHandler
func NewRosterHandler(service DrawService) *RosterHandler {
	return &RosterHandler{service: service}
}

// RosterRequest replaces the roster, either as "name,id" lines or as a list
type RosterRequest struct {
	Text         string               `json:"text" validate:"required_without=Participants"`
	Participants []domain.Participant `json:"participants" validate:"omitempty,dive"`
}

// RosterResponse lists the participants of the session
type RosterResponse struct {
	Count        int                  `json:"count"`
	Participants []domain.Participant `json:"participants"`
}

// HandleGetRoster lists the participants
// @Summary Get roster
// @Tags roster
// @Produce json
// @Success 200 {object} RosterResponse
// @Security ApiKeyAuth
// @Router /api/v1/roster [get]
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	participants := h.service.Participants()
	respondJSON(w, http.StatusOK, RosterResponse{Count: len(participants), Participants: participants})
}

// HandlePutRoster replaces the roster
// @Summary Replace roster
// @Description Accepts JSON {"text": "..."} or {"participants": [...]}, or a text/plain body with one "name,id" per line.
// @Description Separators may be comma, tab or full-width comma. Existing winners are kept.
// @Tags roster
// @Accept json,plain
// @Produce json
// @Param request body RosterRequest true "Roster"
// @Success 200 {object} RosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/roster [put]
func (h *RosterHandler) HandlePutRoster(w http.ResponseWriter, r *http.Request) {
	participants, ok := h.readRoster(w, r)
	if !ok {
		return
	}

	if err := h.service.ImportParticipants(r.Context(), participants); err != nil {
		respondServiceError(w, r, "import_roster", err)
		return
	}

	imported := h.service.Participants()
	respondJSON(w, http.StatusOK, RosterResponse{Count: len(imported), Participants: imported})
}

func (h *RosterHandler) readRoster(w http.ResponseWriter, r *http.Request) ([]domain.Participant, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == ContentTypeText {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", "Import roster", "error", err)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, CodeInvalidRequest, ErrMsgRequestTooLarge)
			} else {
				respondError(w, http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequest)
			}
			return nil, false
		}
		return h.parse(w, r, string(body))
	}

	var req RosterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Import roster"); err != nil {
		return nil, false
	}
	if req.Text != "" {
		return h.parse(w, r, req.Text)
	}
	return req.Participants, true
}

func (h *RosterHandler) parse(w http.ResponseWriter, r *http.Request, text string) ([]domain.Participant, bool) {
	participants, err := roster.Parse(text)
	if err != nil {
		respondServiceError(w, r, "parse_roster", err)
		return nil, false
	}
	return participants, true
}
