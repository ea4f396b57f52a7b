package handler

import (
	"net/http"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/history"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
)

// CraftRequest applies one currency, optionally with omens, to an item
type CraftRequest struct {
	Item     catalog.ItemSpec `json:"item"`
	Currency string           `json:"currency" validate:"required,notblank,max=100"`
	Omens    []string         `json:"omens,omitempty" validate:"max=4,unique,dive,required,max=100"`
	Seed     *uint64          `json:"seed,omitempty"`
}

// CraftResponse is the outcome of a craft
type CraftResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	ResultItem *ItemView `json:"result_item"`
}

// NamesResponse lists currency or omen names
type NamesResponse struct {
	Names []string `json:"names"`
}

// CatalogResponse identifies the loaded crafting data
type CatalogResponse struct {
	Version string `json:"version"`
}

// HandleListCurrencies lists every currency the engine knows
// @Summary List currencies
// @Tags crafting
// @Produce json
// @Success 200 {object} NamesResponse
// @Router /api/v1/currencies [get]
func HandleListCurrencies(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, NamesResponse{Names: svc.ListCurrencies()})
	}
}

// HandleApplicableCurrencies lists the currencies that can currently be applied to an item
// @Summary Applicable currencies
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item"
// @Success 200 {object} NamesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/currencies/applicable [post]
func HandleApplicableCurrencies(svc crafting.Service, builder ItemBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := decodeItem(w, r, builder, ActionApplicable)
		if item == nil {
			return
		}

		names, err := svc.ApplicableCurrencies(r.Context(), item)
		if err != nil {
			respondServiceError(w, r, ActionApplicable, err)
			return
		}
		respondJSON(w, http.StatusOK, NamesResponse{Names: names})
	}
}

// HandleCompatibleOmens lists the omens that can accompany a currency
// @Summary Compatible omens
// @Tags crafting
// @Produce json
// @Param currency query string true "Currency name"
// @Success 200 {object} NamesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Router /api/v1/omens [get]
func HandleCompatibleOmens(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency, ok := GetQueryParam(r, w, QueryParamCurrency)
		if !ok {
			return
		}

		names, err := svc.CompatibleOmens(currency)
		if err != nil {
			respondServiceError(w, r, ActionCompatibleOmens, err)
			return
		}
		respondJSON(w, http.StatusOK, NamesResponse{Names: names})
	}
}

// HandleAvailableMods lists what can roll on an item, split by provenance
// @Summary Available modifiers
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item"
// @Success 200 {object} crafting.ModBreakdown
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/mods/available [post]
func HandleAvailableMods(svc crafting.Service, builder ItemBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := decodeItem(w, r, builder, ActionAvailableMods)
		if item == nil {
			return
		}

		breakdown, err := svc.AvailableMods(r.Context(), item)
		if err != nil {
			respondServiceError(w, r, ActionAvailableMods, err)
			return
		}
		respondJSON(w, http.StatusOK, breakdown)
	}
}

// HandleCraft applies a currency to an item and records the attempt
// @Summary Apply currency
// @Description Applies one currency with optional omens. Gameplay failures are returned with success=false and status 200.
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft details"
// @Success 200 {object} CraftResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/craft [post]
func HandleCraft(svc crafting.Service, builder ItemBuilder, recorder history.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionCraft); err != nil {
			return
		}
		item := buildItem(w, r, builder, &req.Item, ActionCraft)
		if item == nil {
			return
		}

		applyReq := crafting.ApplyRequest{
			Item:     item,
			Currency: req.Currency,
			Omens:    req.Omens,
			Seed:     req.Seed,
		}
		result, err := svc.Apply(r.Context(), applyReq)
		if err != nil {
			respondServiceError(w, r, ActionCraft, err)
			return
		}

		log.Info(LogMsgCraftApplied,
			LogFieldCurrency, req.Currency,
			LogFieldOmens, req.Omens,
			LogFieldSuccess, result.Success,
			LogFieldMessage, result.Message)

		recorder.Record(r.Context(), history.NewEntry(applyReq, result))

		respondJSON(w, http.StatusOK, CraftResponse{
			Success:    result.Success,
			Message:    result.Message,
			ResultItem: NewItemView(result.ResultItem),
		})
	}
}

// HandleCatalogVersion reports the digest of the loaded crafting data
// @Summary Catalog version
// @Tags crafting
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleCatalogVersion(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CatalogResponse{Version: svc.CatalogVersion()})
	}
}
