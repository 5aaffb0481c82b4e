package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// ResultsHandler serves read-only views of the winner ledger
type ResultsHandler struct {
	service DrawService
}

// NewResultsHandler creates a ResultsHandler
func NewResultsHandler(service DrawService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

// ResultsResponse lists winner records in commit order
type ResultsResponse struct {
	Level   *int                  `json:"level,omitempty"`
	Count   int                   `json:"count"`
	Winners []domain.WinnerRecord `json:"winners"`
}

// HandleGetResults lists winners, optionally for a single tier
// @Summary Get results
// @Tags results
// @Produce json
// @Param level query int false "Prize tier level"
// @Success 200 {object} ResultsResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/results [get]
func (h *ResultsHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	winners, level, ok := h.winners(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ResultsResponse{Level: level, Count: len(winners), Winners: winners})
}

// HandleExportResults streams winners as CSV
// @Summary Export results as CSV
// @Description Columns: tier_level, tier_name, participant_id, participant_name, timestamp
// @Tags results
// @Produce text/csv
// @Param level query int false "Prize tier level"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/draw/results/export [get]
func (h *ResultsHandler) HandleExportResults(w http.ResponseWriter, r *http.Request) {
	winners, _, ok := h.winners(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", ContentTypeCSV)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(ExportHeader)
	for _, rec := range winners {
		_ = cw.Write([]string{
			strconv.Itoa(rec.TierLevel),
			csvSafe(rec.TierName),
			csvSafe(rec.ParticipantID),
			csvSafe(rec.ParticipantName),
			rec.Timestamp.UTC().Format(ExportTimeLayout),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgExportWritten, "rows", len(winners))
}

func (h *ResultsHandler) winners(w http.ResponseWriter, r *http.Request) ([]domain.WinnerRecord, *int, bool) {
	level, present, ok := GetOptionalIntQueryParam(r, w, QueryParamLevel, ErrMsgInvalidLevel)
	if !ok {
		return nil, nil, false
	}

	var winners []domain.WinnerRecord
	var levelPtr *int
	if present {
		winners = h.service.WinnersForTier(level)
		levelPtr = &level
	} else {
		winners = h.service.Winners()
	}
	if winners == nil {
		winners = []domain.WinnerRecord{}
	}
	return winners, levelPtr, true
}

// csvSafe stops spreadsheet apps from evaluating names as formulas
func csvSafe(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
