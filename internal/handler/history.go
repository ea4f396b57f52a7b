package handler

import (
	"net/http"

	"github.com/osse101/PoE2Craft_Go/internal/history"
)

// HistoryResponse lists recent craft attempts, newest first
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// HandleGetHistory returns the most recent craft attempts
// @Summary Craft history
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries (default 20, max 200)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/history [get]
func HandleGetHistory(recorder history.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntParam(r, w, QueryParamLimit, 0)
		if !ok {
			return
		}

		entries, err := recorder.Recent(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ActionHistory, err)
			return
		}
		if entries == nil {
			entries = []history.Entry{}
		}
		respondJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
	}
}
