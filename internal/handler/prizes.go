package handler

import (
	"net/http"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/prize"
)

// PrizeHandler serves prize tier configuration
type PrizeHandler struct {
	service DrawService
}

// NewPrizeHandler creates a PrizeHandler
func NewPrizeHandler(service DrawService) *PrizeHandler {
	return &PrizeHandler{service: service}
}

// PrizesRequest replaces the tier table
type PrizesRequest struct {
	Tiers []domain.PrizeTier `json:"tiers" validate:"required,min=1,dive"`
}

// PrizesResponse lists tiers in draw order
type PrizesResponse struct {
	Tiers      []domain.PrizeTier `json:"tiers"`
	TotalQuota int                `json:"totalQuota"`
}

func newPrizesResponse(tiers []domain.PrizeTier) PrizesResponse {
	if tiers == nil {
		tiers = []domain.PrizeTier{}
	}
	return PrizesResponse{Tiers: tiers, TotalQuota: prize.TotalQuota(tiers)}
}

// HandleGetPrizes lists the configured tiers
// @Summary Get prize tiers
// @Description Tiers are returned highest level first, the order they are drawn in
// @Tags prizes
// @Produce json
// @Success 200 {object} PrizesResponse
// @Security ApiKeyAuth
// @Router /api/v1/prizes [get]
func (h *PrizeHandler) HandleGetPrizes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newPrizesResponse(h.service.Tiers()))
}

// HandlePutPrizes replaces the tier table
// @Summary Replace prize tiers
// @Tags prizes
// @Accept json
// @Produce json
// @Param request body PrizesRequest true "Tiers"
// @Success 200 {object} PrizesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/prizes [put]
func (h *PrizeHandler) HandlePutPrizes(w http.ResponseWriter, r *http.Request) {
	var req PrizesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Configure prizes"); err != nil {
		return
	}

	if err := h.service.ConfigureTiers(r.Context(), req.Tiers); err != nil {
		respondServiceError(w, r, "configure_prizes", err)
		return
	}
	respondJSON(w, http.StatusOK, newPrizesResponse(h.service.Tiers()))
}

// HandleGetPresets returns the default tier ladder
// @Summary Get preset prize tiers
// @Tags prizes
// @Produce json
// @Success 200 {object} PrizesResponse
// @Security ApiKeyAuth
// @Router /api/v1/prizes/presets [get]
func (h *PrizeHandler) HandleGetPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newPrizesResponse(prize.Presets()))
}
