package handler

import (
	"net/http"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/simulate"
)

// SimulateRequest repeats one craft many times from the same starting item
type SimulateRequest struct {
	Item     catalog.ItemSpec `json:"item"`
	Currency string           `json:"currency" validate:"required,notblank,max=100"`
	Omens    []string         `json:"omens,omitempty" validate:"max=4,unique,dive,required,max=100"`
	Trials   int              `json:"trials" validate:"required,min=1"`
	Seed     *uint64          `json:"seed,omitempty"`
}

// HandleSimulate runs a Monte Carlo batch of crafts
// @Summary Simulate crafts
// @Description Applies the same currency to copies of the item and summarises the outcomes. The seed in the response replays the run.
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Simulation details"
// @Success 200 {object} simulate.Summary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Failure 504 {object} ErrorResponse
// @Router /api/v1/simulate [post]
func HandleSimulate(runner simulate.Runner, builder ItemBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionSimulate); err != nil {
			return
		}
		item := buildItem(w, r, builder, &req.Item, ActionSimulate)
		if item == nil {
			return
		}

		summary, err := runner.Run(r.Context(), simulate.Request{
			Item:     item,
			Currency: req.Currency,
			Omens:    req.Omens,
			Trials:   req.Trials,
			Seed:     req.Seed,
		})
		if err != nil {
			respondServiceError(w, r, ActionSimulate, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSimulationDone,
			LogFieldCurrency, req.Currency,
			LogFieldTrials, summary.Trials,
			LogFieldSuccesses, summary.Successes)

		respondJSON(w, http.StatusOK, summary)
	}
}
