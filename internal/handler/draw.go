package handler

import (
	"net/http"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/session"
)

// DrawHandler serves the ceremony controls
type DrawHandler struct {
	service DrawService
}

// NewDrawHandler creates a DrawHandler
func NewDrawHandler(service DrawService) *DrawHandler {
	return &DrawHandler{service: service}
}

// RollRequest optionally pins the draw mode of a start or stop.
// An empty mode uses the session's current mode.
type RollRequest struct {
	Mode string `json:"mode" validate:"omitempty,drawmode"`
}

// StopResponse carries the winners committed by a stop and the resulting state
type StopResponse struct {
	Winners []domain.WinnerRecord `json:"winners"`
	State   session.State         `json:"state"`
}

// AdvanceResponse reports the new tier position
type AdvanceResponse struct {
	TierIndex int           `json:"tierIndex"`
	State     session.State `json:"state"`
}

// ResetRequest must carry confirm=true
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// ModeRequest switches between sequential and batch draws
type ModeRequest struct {
	Mode string `json:"mode" validate:"required,drawmode"`
}

// HandleGetState returns the full ceremony state
// @Summary Get draw state
// @Description Current tier, per-tier progress, preview and the winners of the last round
// @Tags draw
// @Produce json
// @Success 200 {object} session.State
// @Security ApiKeyAuth
// @Router /api/v1/draw/state [get]
func (h *DrawHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.State())
}

// HandleStart begins the rolling preview
// @Summary Start rolling
// @Description Starts the preview for the current tier. Starting twice is a no-op.
// @Tags draw
// @Accept json
// @Produce json
// @Param request body RollRequest false "Optional draw mode"
// @Success 200 {object} session.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/start [post]
func (h *DrawHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := DecodeOptionalRequest(r, w, &req, "Start draw"); err != nil {
		return
	}

	var err error
	switch mode, _ := domain.ParseDrawMode(req.Mode); {
	case req.Mode == "":
		err = h.service.Start(r.Context())
	case mode == domain.DrawModeBatch:
		err = h.service.StartBatch(r.Context())
	default:
		err = h.service.StartSequential(r.Context())
	}
	if err != nil {
		respondServiceError(w, r, "start", err)
		return
	}

	respondJSON(w, http.StatusOK, h.service.State())
}

// HandleStop ends the roll and commits winners
// @Summary Stop rolling
// @Description Stops the preview and commits one winner (sequential) or every remaining slot (batch)
// @Tags draw
// @Accept json
// @Produce json
// @Param request body RollRequest false "Optional draw mode"
// @Success 200 {object} StopResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/stop [post]
func (h *DrawHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := DecodeOptionalRequest(r, w, &req, "Stop draw"); err != nil {
		return
	}

	var (
		winners []domain.WinnerRecord
		err     error
	)
	switch mode, _ := domain.ParseDrawMode(req.Mode); {
	case req.Mode == "":
		winners, err = h.service.Stop(r.Context())
	case mode == domain.DrawModeBatch:
		winners, err = h.service.StopBatch(r.Context())
	default:
		var rec *domain.WinnerRecord
		rec, err = h.service.StopSequential(r.Context())
		if rec != nil {
			winners = []domain.WinnerRecord{*rec}
		}
	}
	if err != nil {
		respondServiceError(w, r, "stop", err)
		return
	}
	if winners == nil {
		winners = []domain.WinnerRecord{}
	}

	respondJSON(w, http.StatusOK, StopResponse{Winners: winners, State: h.service.State()})
}

// HandleAdvance moves to the next prize tier
// @Summary Advance tier
// @Description Moves to the next lower tier once the current one is full
// @Tags draw
// @Produce json
// @Success 200 {object} AdvanceResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/advance [post]
func (h *DrawHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	idx, err := h.service.Advance(r.Context())
	if err != nil {
		respondServiceError(w, r, "advance", err)
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{TierIndex: idx, State: h.service.State()})
}

// HandleReset clears every winner
// @Summary Reset draw
// @Description Clears the winner ledger and returns to the first tier. Requires {"confirm": true}.
// @Tags draw
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Confirmation"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/reset [post]
func (h *DrawHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := DecodeOptionalRequest(r, w, &req, "Reset draw"); err != nil {
		return
	}

	if err := h.service.Reset(r.Context(), req.Confirm); err != nil {
		respondServiceError(w, r, "reset", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionReset})
}

// HandleSetMode switches the draw mode
// @Summary Set draw mode
// @Tags draw
// @Accept json
// @Produce json
// @Param request body ModeRequest true "sequential or batch"
// @Success 200 {object} session.State
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/mode [put]
func (h *DrawHandler) HandleSetMode(w http.ResponseWriter, r *http.Request) {
	var req ModeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set draw mode"); err != nil {
		return
	}

	mode, err := domain.ParseDrawMode(req.Mode)
	if err == nil {
		err = h.service.SetDrawMode(r.Context(), mode)
	}
	if err != nil {
		respondServiceError(w, r, "set_mode", err)
		return
	}
	respondJSON(w, http.StatusOK, h.service.State())
}
